// Package validation checks user input before it reaches the tasks file.
package validation

import (
	"fmt"
	"strings"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
)

// forbidden are the characters that would split a record into extra fields or lines.
const forbidden = ",\r\n"

// ValidationResult represents the result of a single check
type ValidationResult struct {
	Valid  bool
	Reason string
}

// CheckField reports whether value can be stored in a task field.
func CheckField(field, value string) ValidationResult {
	if i := strings.IndexAny(value, forbidden); i >= 0 {
		return ValidationResult{
			Valid:  false,
			Reason: fmt.Sprintf("%s contains %q at position %d", field, value[i], i),
		}
	}
	return ValidationResult{Valid: true}
}

// ValidateField returns a delimiter error when value cannot be stored.
func ValidateField(field, value string) error {
	if r := CheckField(field, value); !r.Valid {
		return taskerrors.NewDelimiterError(field, value).WithContext("reason", r.Reason)
	}
	return nil
}

// CheckAssignee reports whether s names someone a task can be announced to.
// Any non-empty text without a delimiter is accepted.
func CheckAssignee(s string) ValidationResult {
	if strings.TrimSpace(s) == "" {
		return ValidationResult{Valid: false, Reason: "assignee cannot be empty"}
	}
	return CheckField("assignee", s)
}

// ValidateAssignee returns a validation error when s cannot name an assignee.
func ValidateAssignee(s, operation string) error {
	if r := CheckAssignee(s); !r.Valid {
		return taskerrors.NewValidationFailedError("assignee email", s, operation).WithContext("reason", r.Reason)
	}
	return nil
}
