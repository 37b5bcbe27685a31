package integration

import (
	"testing"

	"github.com/maxkimambo/tasks/integration_tests/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ws := testutil.SetupTestWorkspace(t, testutil.RequireBinary(t))

	res := ws.Run(t, "", nil, "list")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stdout, "File not found.")
	assert.Contains(t, res.Stdout, "No tasks available.")

	res = ws.Run(t, "", nil, "create", "Buy milk", "2%")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	res = ws.Run(t, "", nil, "create", "Write report", "Q3")
	require.Equal(t, 0, res.ExitCode, res.Stderr)

	res = ws.Run(t, "", nil, "toggle", "2")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stdout, "status updated to complete")

	assert.Equal(t, "Buy milk,2%,0\nWrite report,Q3,1\n", ws.TasksFileContent(t))
}

func TestErrorHandling(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ws := testutil.SetupTestWorkspace(t, testutil.RequireBinary(t))
	ws.Run(t, "", nil, "create", "a", "b")

	tests := []struct {
		name          string
		args          []string
		stdin         string
		expectedError string
	}{
		{
			name:          "invalid_task_number",
			args:          []string{"edit", "7", "x"},
			expectedError: "Invalid task number.",
		},
		{
			name:          "delete_without_admin",
			args:          []string{"delete", "1", "--yes"},
			expectedError: "Only admin users can delete tasks.",
		},
		{
			name:          "assign_without_admin",
			args:          []string{"assign", "1", "bob@example.com"},
			expectedError: "Only admin users can assign tasks.",
		},
		{
			name:          "comma_in_name",
			args:          []string{"create", "a,b", "c"},
			expectedError: "must not contain commas",
		},
		{
			name:          "unknown_user",
			args:          []string{"--user", "nobody", "delete", "1"},
			stdin:         "pw\n",
			expectedError: "Authentication failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ws.Run(t, tt.stdin, nil, tt.args...)
			assert.Equal(t, 1, res.ExitCode)
			assert.Contains(t, res.Stderr, tt.expectedError)
		})
	}

	assert.Equal(t, "a,b,0\n", ws.TasksFileContent(t))
}

func TestAdminWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ws := testutil.SetupTestWorkspace(t, testutil.RequireBinary(t))
	env := []string{"TASKS_PASSWORD=s3cret"}

	res := ws.Run(t, "", env, "user", "add", "alice", "--role", "admin")
	require.Equal(t, 0, res.ExitCode, res.Stderr)

	ws.Run(t, "", nil, "create", "a", "b")
	ws.Run(t, "", nil, "create", "c", "d")

	res = ws.Run(t, "", env, "--user", "alice", "assign", "2", "bob@example.com")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stdout, "Task 'c' assigned to bob@example.com.")

	res = ws.Run(t, "", env, "--user", "alice", "delete", "1", "--yes")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Equal(t, "c,d,0\n", ws.TasksFileContent(t))
}
