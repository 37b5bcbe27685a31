package cmd

import (
	"fmt"
	"strconv"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
	"github.com/maxkimambo/tasks/internal/utils"
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME DESCRIPTION",
		Short: "Create a new incomplete task",
		Example: `tasks create "Buy milk" "2%"
tasks --file ~/work.txt create "Write report" "Q3 numbers"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.manager.Create(args[0], args[1])
			if err != nil {
				return err
			}
			logger.User.Createf("Task '%s' created successfully!", task.Name)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "view"},
		Short:   "List all tasks with their serial numbers and status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.manager.List()
			if taskerrors.IsNotFound(err) {
				logger.User.Warn(taskerrors.Message(err))
			} else if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), utils.Info("No tasks available."))
				return nil
			}
			table := utils.NewTableFormatter([]string{"#", "Name", "Description", "Status"})
			for i, t := range all {
				table.AddRow([]string{strconv.Itoa(i + 1), t.Name, t.Description, t.Status()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit NUMBER DESCRIPTION",
		Short: "Replace the description of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.manager.EditDescription(parseSerial(args[0]), args[1])
			if err != nil {
				return err
			}
			logger.User.Updatef("Task '%s' description updated successfully!", task.Name)
			return nil
		},
	}
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle NUMBER",
		Aliases: []string{"done"},
		Short:   "Flip a task between complete and incomplete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.manager.ToggleStatus(parseSerial(args[0]))
			if err != nil {
				return err
			}
			logger.User.Updatef("Task '%s' status updated to %s.", task.Name, task.Status())
			return nil
		},
	}
}

func newAssignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign NUMBER EMAIL",
		Short: "Assign a task to an employee (admin only)",
		Long: `Announce that a task is assigned to an employee by email address.
The assignment is not stored in the tasks file. Requires --user with the admin role.`,
		Example: `TASKS_PASSWORD=secret tasks --user alice assign 2 bob@example.com`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			requester, err := a.requester(cmd)
			if err != nil {
				return err
			}
			assignment, err := a.manager.Assign(parseSerial(args[0]), args[1], requester.Role)
			if err != nil {
				return err
			}
			logger.User.Assignf("Task '%s' assigned to %s.", assignment.Task.Name, assignment.AssigneeEmail)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete NUMBER",
		Aliases: []string{"rm"},
		Short:   "Delete a task (admin only)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requester, err := a.requester(cmd)
			if err != nil {
				return err
			}
			index := parseSerial(args[0])

			if requester.Role.CanDelete() && !yes {
				all, err := a.manager.List()
				if err != nil && !taskerrors.IsNotFound(err) {
					return err
				}
				if index >= 0 && index < len(all) {
					ok, err := a.prompter(cmd).Confirm(false, "delete task", all[index].Name)
					if err != nil {
						return err
					}
					if !ok {
						logger.User.Info("Delete cancelled.")
						return nil
					}
				}
			}

			removed, err := a.manager.Delete(index, requester.Role)
			if err != nil {
				return err
			}
			logger.User.Deletef("Task '%s' has been deleted.", removed.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
