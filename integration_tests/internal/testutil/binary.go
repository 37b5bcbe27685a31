package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GetTasksBinaryPath returns the path to the tasks binary for integration tests.
// It checks, in order: TASKS_BINARY, ./tasks, ../tasks and ../bin/tasks.
func GetTasksBinaryPath() string {
	if p := os.Getenv("TASKS_BINARY"); p != "" {
		return p
	}
	for _, p := range []string{"tasks", filepath.Join("..", "tasks"), filepath.Join("..", "bin", "tasks")} {
		if _, err := os.Stat(p); err == nil {
			abs, err := filepath.Abs(p)
			if err == nil {
				return abs
			}
			return p
		}
	}
	return ""
}

// RequireBinary skips the test when no built binary is available.
func RequireBinary(t *testing.T) string {
	t.Helper()
	bin := GetTasksBinaryPath()
	if bin == "" {
		t.Skip("tasks binary not found; build it with 'go build -o tasks .' or set TASKS_BINARY")
	}
	return bin
}
