package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Message returns the short user-facing message for err
func Message(err error) string {
	var taskErr *TaskError
	if stderrors.As(err, &taskErr) {
		return taskErr.Message
	}
	return err.Error()
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	var taskErr *TaskError
	if stderrors.As(err, &taskErr) {
		return fmt.Sprintf("%s-%s: %s", taskErr.Category, taskErr.Code, taskErr.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}

// FormatForCLI formats an error for command-line display with proper spacing
func FormatForCLI(err error) string {
	var taskErr *TaskError
	if stderrors.As(err, &taskErr) {
		var sb strings.Builder

		sb.WriteString(fmt.Sprintf("\nError [%s-%s]\n", taskErr.Category, taskErr.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", taskErr.Message))

		if taskErr.Operation != "" {
			sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", taskErr.Operation))
		}

		if len(taskErr.Context) > 0 {
			sb.WriteString("\nDetails:\n")
			for _, key := range taskErr.contextKeys() {
				sb.WriteString(fmt.Sprintf("  %s: %v\n", key, taskErr.Context[key]))
			}
		}

		if len(taskErr.Troubleshooting) > 0 {
			sb.WriteString("\nHow to resolve:\n")
			for i, step := range taskErr.Troubleshooting {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
			}
		}

		if taskErr.OriginalError != nil {
			sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", taskErr.OriginalError))
		}

		return sb.String()
	}

	return fmt.Sprintf("\nError: %v\n", err)
}

// IsUserError determines if an error is due to user input rather than the environment
func IsUserError(err error) bool {
	c, ok := categoryOf(err)
	if !ok {
		return false
	}
	switch c {
	case ErrorCategoryValidation, ErrorCategoryInvalidIndex, ErrorCategoryForbidden,
		ErrorCategoryAuth, ErrorCategoryConfiguration:
		return true
	}
	return false
}

// GetErrorCode extracts the error code for reporting
func GetErrorCode(err error) string {
	var taskErr *TaskError
	if stderrors.As(err, &taskErr) {
		return fmt.Sprintf("%s-%s", taskErr.Category, taskErr.Code)
	}
	return "UNKNOWN"
}
