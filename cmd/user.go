package cmd

import (
	"fmt"
	"os"

	"github.com/maxkimambo/tasks/internal/logger"
	"github.com/maxkimambo/tasks/internal/users"
	"github.com/maxkimambo/tasks/internal/utils"
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the users allowed to log in",
	}

	var (
		role  string
		email string
	)
	addCmd := &cobra.Command{
		Use:     "add NAME",
		Short:   "Add or replace a user in the users file",
		Example: `TASKS_PASSWORD=secret tasks user add alice --role admin --email alice@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := users.ParseRole(role)
			if err != nil {
				return err
			}
			dir, err := users.Load(a.cfg.UsersFile)
			if err != nil {
				return err
			}
			password := os.Getenv("TASKS_PASSWORD")
			if password == "" {
				if password, err = utils.ReadPassword("New password: "); err != nil {
					return err
				}
			}
			if err := dir.Add(users.User{Name: args[0], Email: email, Role: r}, password); err != nil {
				return err
			}
			if err := dir.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.Success(
				fmt.Sprintf("User '%s' saved as %s.", args[0], r),
				"Users file: "+a.cfg.UsersFile,
			))
			return nil
		},
	}
	addCmd.Flags().StringVar(&role, "role", "employee", "Role: admin or employee")
	addCmd.Flags().StringVar(&email, "email", "", "Email address (optional)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users and their roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := users.Load(a.cfg.UsersFile)
			if err != nil {
				return err
			}
			table := utils.NewTableFormatter([]string{"Name", "Email", "Role"})
			for _, u := range dir.Users() {
				table.AddRow([]string{u.Name, u.Email, u.Role.String()})
			}
			if table.Len() == 0 {
				logger.User.Info("No users configured.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	userCmd.AddCommand(addCmd, listCmd)
	return userCmd
}
