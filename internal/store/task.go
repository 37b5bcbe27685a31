// Package store persists tasks in a flat comma-delimited text file.
//
// Each line holds one task as name,description,flag where flag is 1 for a
// completed task and 0 otherwise. There is no header and no escaping, so
// names and descriptions may not contain commas or line breaks.
package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maxkimambo/tasks/internal/validation"
)

const (
	fieldDelimiter = ","
	fieldCount     = 3
)

// Task is a single tracked item. Its only handle is its position in the file.
type Task struct {
	Name        string
	Description string
	Complete    bool
}

// Status returns "complete" or "incomplete".
func (t Task) Status() string {
	if t.Complete {
		return "complete"
	}
	return "incomplete"
}

func encodeTask(t Task) (string, error) {
	if err := validation.ValidateField("name", t.Name); err != nil {
		return "", err
	}
	if err := validation.ValidateField("description", t.Description); err != nil {
		return "", err
	}
	flag := "0"
	if t.Complete {
		flag = "1"
	}
	return t.Name + fieldDelimiter + t.Description + fieldDelimiter + flag + "\n", nil
}

// decodeTask parses one line. Lines that are not exactly three fields or
// whose flag is not an integer are malformed.
func decodeTask(line string) (Task, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldDelimiter)
	if len(fields) != fieldCount {
		return Task{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	flag, err := strconv.Atoi(fields[2])
	if err != nil {
		return Task{}, fmt.Errorf("completion flag %q: %w", fields[2], err)
	}
	return Task{
		Name:        fields[0],
		Description: fields[1],
		Complete:    flag != 0,
	}, nil
}
