package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
)

func (a *application) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vault",
		Short: "Encrypted credential vault",
		Long: `vault stores secrets encrypted under a local master key. Every command
that touches entries asks for the master password of the --user account.

Secrets are read without echo from a terminal, or one per line from stdin.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.passwdCommand(),
		a.resetCommand(),
		a.addCommand(),
		a.listCommand(),
		a.showCommand(),
		a.updateCommand(),
		a.renameCommand(),
		a.rmCommand(),
		a.checkCommand(),
		a.generateCommand(),
		a.migrateCommand(),
		a.versionCommand(),
	)

	return root
}
