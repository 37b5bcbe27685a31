package config

import (
	"os"
	"path/filepath"
	"testing"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := "tasksFile: /data/tasks.txt\nusersFile: /data/users.yaml\nlogMode: verbose\nlogFormat: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/tasks.txt", cfg.TasksFile)
	assert.Equal(t, "/data/users.yaml", cfg.UsersFile)
	assert.True(t, cfg.Verbose())
	assert.False(t, cfg.Quiet())
	assert.True(t, cfg.JSONLogs())

	t.Setenv("TASKS_FILE", "/env/tasks.txt")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/tasks.txt", cfg.TasksFile)
	assert.Equal(t, "/data/users.yaml", cfg.UsersFile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logMode: quiet\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "all_tasks.txt", cfg.TasksFile)
	assert.True(t, cfg.Quiet())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasksFile: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, "CONFIGURATION-002", taskerrors.GetErrorCode(err))
}
