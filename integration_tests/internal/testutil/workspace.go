package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Workspace is a scratch directory holding a config file, tasks file and users file.
type Workspace struct {
	Dir       string
	Binary    string
	TasksFile string
	UsersFile string
}

// Result captures one run of the binary.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SetupTestWorkspace creates a workspace with a tasks.yaml pointing at files inside it.
func SetupTestWorkspace(t *testing.T, binary string) *Workspace {
	t.Helper()

	dir := t.TempDir()
	ws := &Workspace{
		Dir:       dir,
		Binary:    binary,
		TasksFile: filepath.Join(dir, "all_tasks.txt"),
		UsersFile: filepath.Join(dir, "users.yaml"),
	}
	config := "tasksFile: " + ws.TasksFile + "\nusersFile: " + ws.UsersFile + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte(config), 0o644))
	return ws
}

// Run executes the binary inside the workspace with optional stdin and extra env.
func (w *Workspace) Run(t *testing.T, stdin string, env []string, args ...string) Result {
	t.Helper()

	cmd := exec.Command(w.Binary, args...)
	cmd.Dir = w.Dir
	cmd.Env = append(os.Environ(), "TASKS_FILE=", "TASKS_USERS_FILE=", "TASKS_PASSWORD=", "LOG_MODE=", "LOG_FORMAT=")
	cmd.Env = append(cmd.Env, env...)
	cmd.Stdin = bytes.NewBufferString(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err, "failed to start %s", w.Binary)
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// TasksFileContent returns the current tasks file, or "" if it does not exist.
func (w *Workspace) TasksFileContent(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(w.TasksFile)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
