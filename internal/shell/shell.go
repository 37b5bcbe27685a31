// Package shell runs the numbered interactive menu over the task operations.
package shell

import (
	"errors"
	"fmt"
	"io"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
	"github.com/maxkimambo/tasks/internal/store"
	"github.com/maxkimambo/tasks/internal/tasks"
	"github.com/maxkimambo/tasks/internal/users"
	"github.com/maxkimambo/tasks/internal/utils"
)

const menu = `
1. Create task
2. View all tasks
3. Edit task description
4. Toggle task status
5. Assign task
6. Delete task
0. Exit
`

type Shell struct {
	manager *tasks.Manager
	user    users.User
	prompt  *utils.Prompter
	out     io.Writer
}

// New creates a shell acting as user. Questions are asked through prompt and
// results are written to out.
func New(manager *tasks.Manager, user users.User, prompt *utils.Prompter, out io.Writer) *Shell {
	return &Shell{
		manager: manager,
		user:    user,
		prompt:  prompt,
		out:     out,
	}
}

// Run shows the menu until the user exits or input ends. Operation errors
// are printed and never end the loop; only I/O errors on the terminal do.
func (s *Shell) Run() error {
	fmt.Fprintf(s.out, "Logged in as %s (%s)\n", s.user.Name, s.user.Role)
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt.ReadLine("Select an option: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.create()
		case "2":
			err = s.view()
		case "3":
			err = s.edit()
		case "4":
			err = s.toggle()
		case "5":
			err = s.assign()
		case "6":
			err = s.delete()
		case "0", "q", "exit":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option, please try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			s.report(err)
		}
	}
}

// report prints an operation error and logs the detail
func (s *Shell) report(err error) {
	fmt.Fprintln(s.out, taskerrors.Message(err))
	logger.Op.Debug(taskerrors.DisplayErrorSummary(err))
}

func (s *Shell) create() error {
	name, err := s.prompt.ReadLine("Please enter a title: ")
	if err != nil {
		return err
	}
	description, err := s.prompt.ReadLine("Please enter a description: ")
	if err != nil {
		return err
	}
	if _, err := s.manager.Create(name, description); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Task created successfully!")
	return nil
}

func (s *Shell) view() error {
	all, err := s.manager.List()
	if taskerrors.IsNotFound(err) {
		fmt.Fprintln(s.out, taskerrors.Message(err))
	} else if err != nil {
		return err
	}
	printTasks(s.out, all)
	return nil
}

// tasks lists without reporting a missing file, which view already did.
func (s *Shell) tasks() ([]store.Task, error) {
	all, err := s.manager.List()
	if taskerrors.IsNotFound(err) {
		return all, nil
	}
	return all, err
}

func printTasks(out io.Writer, all []store.Task) {
	if len(all) == 0 {
		fmt.Fprintln(out, "No tasks available.")
		return
	}
	fmt.Fprintln(out, "Current tasks:")
	fmt.Fprintln(out)
	for i, t := range all {
		fmt.Fprintf(out, "%d. %s - %s (%s)\n", i+1, t.Name, t.Description, t.Status())
	}
}

// selectTask lists the tasks and reads a 1-based serial number, returning
// the 0-based index. Non-numeric input maps to -1 so the manager rejects it.
func (s *Shell) selectTask(prompt string) (int, error) {
	if err := s.view(); err != nil {
		return 0, err
	}
	n, ok, err := s.prompt.ReadInt(prompt)
	if err != nil {
		return 0, err
	}
	if !ok {
		return -1, nil
	}
	return n - 1, nil
}

func (s *Shell) edit() error {
	index, err := s.selectTask("Enter the serial number of the task you would like to edit: ")
	if err != nil {
		return err
	}
	all, err := s.tasks()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(all) {
		return taskerrors.NewInvalidIndexError(index, len(all), "Edit task")
	}
	description, err := s.prompt.ReadLine("Enter new description: ")
	if err != nil {
		return err
	}
	if _, err := s.manager.EditDescription(index, description); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Task description updated successfully!")
	return nil
}

func (s *Shell) toggle() error {
	index, err := s.selectTask("Enter the serial number of the task you want to update the status for: ")
	if err != nil {
		return err
	}
	task, err := s.manager.ToggleStatus(index)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Task '%s' status updated to %s.\n", task.Name, task.Status())
	return nil
}

func (s *Shell) assign() error {
	if !s.user.Role.CanAssign() {
		return taskerrors.NewForbiddenError("assign", s.user.Role.String())
	}
	index, err := s.selectTask("Enter the serial number of the task you want to assign: ")
	if err != nil {
		return err
	}
	all, err := s.tasks()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(all) {
		return taskerrors.NewInvalidIndexError(index, len(all), "Assign task")
	}
	email, err := s.prompt.ReadLine("Enter the email address of the employee you want to assign it to: ")
	if err != nil {
		return err
	}
	a, err := s.manager.Assign(index, email, s.user.Role)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Task '%s' assigned to %s.\n", a.Task.Name, a.AssigneeEmail)
	return nil
}

func (s *Shell) delete() error {
	if !s.user.Role.CanDelete() {
		return taskerrors.NewForbiddenError("delete", s.user.Role.String())
	}
	index, err := s.selectTask("Enter the serial number of the task you would like to delete: ")
	if err != nil {
		return err
	}
	removed, err := s.manager.Delete(index, s.user.Role)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Task '%s' has been deleted.\n", removed.Name)
	return nil
}
