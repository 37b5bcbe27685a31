package config

import (
	"errors"
	"io/fs"
	"os"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "tasks.yaml"

type Config struct {
	TasksFile string `yaml:"tasksFile"`
	UsersFile string `yaml:"usersFile"`
	LogMode   string `yaml:"logMode"`   // quiet, verbose or debug
	LogFormat string `yaml:"logFormat"` // text or json
}

func Default() *Config {
	return &Config{
		TasksFile: "all_tasks.txt",
		UsersFile: "users.yaml",
		LogFormat: "text",
	}
}

// Load reads an optional YAML file and applies TASKS_* environment overrides.
// An empty path means DefaultPath; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, taskerrors.NewConfigurationError(taskerrors.CodeConfigRead,
			"Failed to read config file", "Load config").
			WithContext("file", path).
			WithOriginalError(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, taskerrors.NewConfigurationError(taskerrors.CodeConfigParse,
			"Failed to parse config file", "Load config").
			WithContext("file", path).
			WithOriginalError(err).
			WithTroubleshooting("Check the file is valid YAML")
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TASKS_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("TASKS_USERS_FILE"); v != "" {
		cfg.UsersFile = v
	}
}

// Verbose reports whether logMode asks for debug output.
func (c *Config) Verbose() bool {
	return c.LogMode == "verbose" || c.LogMode == "debug"
}

// Quiet reports whether logMode suppresses non-error output.
func (c *Config) Quiet() bool {
	return c.LogMode == "quiet"
}

// JSONLogs reports whether logs should be emitted as JSON.
func (c *Config) JSONLogs() bool {
	return c.LogFormat == "json"
}
