package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
)

// FileStore reads and writes the whole task list from a single file.
// It holds no locks; concurrent writers race and the last write wins.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the file at path. The file need not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the tasks file.
func (s *FileStore) Path() string {
	return s.path
}

// ReadAll returns every well-formed task in file order. A missing file yields
// an empty slice together with a NotFound error that callers may ignore.
func (s *FileStore) ReadAll() ([]Task, error) {
	tasks := []Task{}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tasks, taskerrors.NewTasksFileNotFoundError(s.path, err)
		}
		return tasks, taskerrors.NewStorageReadError(s.path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			task, decodeErr := decodeTask(line)
			if decodeErr != nil {
				logger.Op.WithFields(map[string]interface{}{
					"file": s.path,
					"line": lineNo,
				}).Debugf("skipping malformed task line: %v", decodeErr)
			} else {
				tasks = append(tasks, task)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return []Task{}, taskerrors.NewStorageReadError(s.path, err)
		}
	}

	logger.Op.Debugf("loaded %d task(s) from %s", len(tasks), s.path)
	return tasks, nil
}

// WriteAll replaces the file contents with tasks. Every task is encoded
// before the file is opened, so a task that cannot be stored leaves the
// previous list untouched. The file is truncated in place, which keeps
// symlinks, ownership and permissions of an existing file.
func (s *FileStore) WriteAll(tasks []Task) error {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		line, err := encodeTask(t)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return taskerrors.NewStorageWriteError(s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return taskerrors.NewStorageWriteError(s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return taskerrors.NewStorageWriteError(s.path, err)
	}
	if err := f.Close(); err != nil {
		return taskerrors.NewStorageWriteError(s.path, err)
	}

	logger.Op.Debugf("wrote %d task(s) to %s", len(tasks), s.path)
	return nil
}

// Append adds one task to the end of the file, creating it if needed.
func (s *FileStore) Append(task Task) error {
	line, err := encodeTask(task)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return taskerrors.NewStorageWriteError(s.path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return taskerrors.NewStorageWriteError(s.path, err)
	}
	if err := f.Close(); err != nil {
		return taskerrors.NewStorageWriteError(s.path, err)
	}
	return nil
}
