package commands

import (
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/accounts"
	"github.com/teller-dev/teller/internal/shell"
)

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
}

func (a *app) runShell(cmd *cobra.Command) error {
	store := accounts.NewStore(a.logger)
	sh := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		DataFile:    a.cfg.Data.File,
		LoadOnStart: a.cfg.Shell.LoadOnStart,
		SaveOnExit:  a.cfg.Shell.SaveOnExit,
		Logger:      a.logger,
	})

	err := sh.Run()
	a.writeAudit(sh.AuditLog())
	return err
}
