package cmd

import (
	"github.com/maxkimambo/tasks/internal/shell"
	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive task menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requester, err := a.requester(cmd)
			if err != nil {
				return err
			}
			return shell.New(a.manager, requester, a.prompter(cmd), cmd.OutOrStdout()).Run()
		},
	}
}
