package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error codes
const (
	CodeTasksFileMissing = "001"

	CodeIndexOutOfRange = "001"

	CodeAdminRequired = "001"

	CodeValidationInput  = "001"
	CodeDelimiterInField = "002"
	CodeValidationRole   = "003"

	CodeStorageRead  = "001"
	CodeStorageWrite = "002"

	CodeAuthUnknownUser = "001"
	CodeAuthBadPassword = "002"

	CodeConfigRead  = "001"
	CodeConfigParse = "002"
)

// NewTasksFileNotFoundError reports a missing tasks file. Callers treat it as an empty list.
func NewTasksFileNotFoundError(path string, originalErr error) *TaskError {
	return NewTaskError(ErrorCategoryNotFound, CodeTasksFileMissing,
		"File not found.",
		"Read tasks").
		WithContext("file", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Create a task to initialise the tasks file",
			"Check --file or the tasksFile setting points at the right path",
		)
}

// NewInvalidIndexError reports a task number outside the current list
func NewInvalidIndexError(index, count int, operation string) *TaskError {
	return NewTaskError(ErrorCategoryInvalidIndex, CodeIndexOutOfRange,
		"Invalid task number.",
		operation).
		WithContext("number", index+1).
		WithContext("tasks", count).
		WithTroubleshooting(
			"Run 'tasks list' to see the current task numbers",
			fmt.Sprintf("Pick a number between 1 and %d", count),
		)
}

// NewForbiddenError reports an operation that requires the admin role
func NewForbiddenError(action, role string) *TaskError {
	return NewTaskError(ErrorCategoryForbidden, CodeAdminRequired,
		fmt.Sprintf("Only admin users can %s tasks.", action),
		fmt.Sprintf("%s task", action)).
		WithContext("role", role).
		WithTroubleshooting(
			"Run the command with --user set to an admin account",
		)
}

// NewDelimiterError reports a field that would corrupt the flat file format
func NewDelimiterError(field, value string) *TaskError {
	return NewValidationError(CodeDelimiterInField,
		fmt.Sprintf("%s must not contain commas or line breaks", field),
		"Encode task").
		WithContext("field", field).
		WithContext("value", value)
}

// NewValidationFailedError creates an error for input validation failures
func NewValidationFailedError(field, value, operation string) *TaskError {
	return NewValidationError(CodeValidationInput,
		fmt.Sprintf("Invalid value for %s: '%s'", field, value),
		operation).
		WithContext("field", field).
		WithContext("value", value).
		WithTroubleshooting(
			"Use --help to see available options and examples",
		)
}

// NewStorageReadError wraps an I/O failure while reading a file
func NewStorageReadError(path string, originalErr error) *TaskError {
	return NewStorageError(CodeStorageRead,
		fmt.Sprintf("Failed to read '%s'", path),
		"Read file").
		WithContext("file", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the file permissions",
		)
}

// NewStorageWriteError wraps an I/O failure while writing a file
func NewStorageWriteError(path string, originalErr error) *TaskError {
	return NewStorageError(CodeStorageWrite,
		fmt.Sprintf("Failed to write '%s'", path),
		"Write file").
		WithContext("file", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the directory exists and is writable",
			"Check there is free disk space",
		)
}

// NewAuthError reports a failed login
func NewAuthError(code, username string) *TaskError {
	return NewTaskError(ErrorCategoryAuth, code,
		fmt.Sprintf("Authentication failed for user '%s'", username),
		"Login").
		WithContext("user", username).
		WithTroubleshooting(
			"Check the user exists in the users file",
			"Add the user with 'tasks user add'",
		)
}

// categoryOf returns the category of the first TaskError in err's chain
func categoryOf(err error) (ErrorCategory, bool) {
	var taskErr *TaskError
	if stderrors.As(err, &taskErr) {
		return taskErr.Category, true
	}
	return "", false
}

// IsNotFound reports whether err is a missing-file error
func IsNotFound(err error) bool {
	c, ok := categoryOf(err)
	return ok && c == ErrorCategoryNotFound
}

// IsInvalidIndex reports whether err is an out-of-range task number
func IsInvalidIndex(err error) bool {
	c, ok := categoryOf(err)
	return ok && c == ErrorCategoryInvalidIndex
}

// IsForbidden reports whether err is a permission failure
func IsForbidden(err error) bool {
	c, ok := categoryOf(err)
	return ok && c == ErrorCategoryForbidden
}
