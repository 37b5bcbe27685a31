package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/maxkimambo/tasks/internal/config"
	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
	"github.com/maxkimambo/tasks/internal/store"
	"github.com/maxkimambo/tasks/internal/tasks"
	"github.com/maxkimambo/tasks/internal/users"
	"github.com/maxkimambo/tasks/internal/utils"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	tasksFile  string
	usersFile  string
	userName   string
	debug      bool
	verbose    bool
	jsonLogs   bool
	quiet      bool

	cfg     *config.Config
	manager *tasks.Manager
	prompt  *utils.Prompter
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tasks",
		Short: "A command-line task tracker backed by a flat text file",
		Long: `Create, list, edit, complete, assign and delete tasks stored one per line
in a comma-delimited text file (name,description,flag).

Assigning and deleting tasks requires an admin user; pass --user to log in.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVarP(&a.tasksFile, "file", "f", "", "Tasks file (overrides config and TASKS_FILE)")
	rootCmd.PersistentFlags().StringVar(&a.usersFile, "users-file", "", "Users file (overrides config and TASKS_USERS_FILE)")
	rootCmd.PersistentFlags().StringVarP(&a.userName, "user", "u", "", "Log in as this user; password from TASKS_PASSWORD or prompt")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&a.jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newEditCmd(a),
		newToggleCmd(a),
		newAssignCmd(a),
		newDeleteCmd(a),
		newShellCmd(a),
		newUserCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI. Mistakes by the user are shown as a short message
// box; anything else gets the full error report.
func Execute() error {
	err := NewRootCmd().Execute()
	if err == nil {
		return nil
	}
	if taskerrors.IsUserError(err) || taskerrors.IsNotFound(err) {
		fmt.Fprintln(os.Stderr, utils.Error(taskerrors.Message(err)))
		logger.Op.Debug(taskerrors.FormatForCLI(err))
	} else {
		fmt.Fprint(os.Stderr, taskerrors.FormatForCLI(err))
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.tasksFile != "" {
		cfg.TasksFile = a.tasksFile
	}
	if a.usersFile != "" {
		cfg.UsersFile = a.usersFile
	}
	a.cfg = cfg

	logger.Setup(a.verbose || a.debug || cfg.Verbose(), a.jsonLogs || cfg.JSONLogs(), a.quiet || cfg.Quiet())
	logger.Op.Debugf("Configuration: %+v", *cfg)

	a.manager = tasks.NewManager(store.NewFileStore(cfg.TasksFile))
	return nil
}

// prompter returns the single Prompter for this invocation. Sharing it keeps
// buffered input from being lost between the password and later questions.
func (a *app) prompter(cmd *cobra.Command) *utils.Prompter {
	if a.prompt == nil {
		a.prompt = utils.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return a.prompt
}

// requester resolves the --user flag to an authenticated user, or Guest.
func (a *app) requester(cmd *cobra.Command) (users.User, error) {
	if a.userName == "" {
		return users.Guest, nil
	}
	dir, err := users.Load(a.cfg.UsersFile)
	if err != nil {
		return users.User{}, err
	}
	password, err := a.readPassword(cmd)
	if err != nil {
		return users.User{}, err
	}
	u, err := dir.Authenticate(a.userName, password)
	if err != nil {
		return users.User{}, err
	}
	logger.Op.WithFields(map[string]interface{}{"user": u.Name, "role": u.Role.String()}).Debug("authenticated")
	return u, nil
}

// readPassword prefers TASKS_PASSWORD, then the terminal, then a line of input.
func (a *app) readPassword(cmd *cobra.Command) (string, error) {
	if pw := os.Getenv("TASKS_PASSWORD"); pw != "" {
		return pw, nil
	}
	if cmd.InOrStdin() == io.Reader(os.Stdin) {
		return utils.ReadPassword("Password: ")
	}
	return a.prompter(cmd).ReadLine("Password: ")
}
