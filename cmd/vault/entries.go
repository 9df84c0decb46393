// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/policy"
)

const defaultGeneratedLength = 20

func (a *application) addCommand() *cobra.Command {
	var (
		generate bool
		length   int
	)

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Store a new secret",
		Example: `  vault add "Gmail Account" --user alice
  vault add "Bank" --generate --length 24`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			var secret string
			if generate {
				secret, err = policy.Generate(length, policy.NewMasterPolicy())
			} else {
				secret, err = a.prompt.newSecret("Secret")
			}
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			id, err := services.VaultService.CreateEntry(ctx, owner, args[0], secret)
			if err != nil {
				return err
			}

			a.printer.success("Stored %q", strings.TrimSpace(args[0]))
			a.printer.plain("%s", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Generate the secret instead of reading it")
	cmd.Flags().IntVarP(&length, "length", "l", defaultGeneratedLength, "Length of a generated secret")

	return cmd
}

func (a *application) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			entries, err := services.VaultService.ListEntries(ctx, owner)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				a.printer.plain("No entries")
				return nil
			}

			w := tabwriter.NewWriter(a.printer.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tUPDATED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Label, e.UpdatedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func (a *application) showCommand() *cobra.Command {
	var copySecret bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Reveal a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			secret, err := services.VaultService.RevealSecret(ctx, owner, args[0])
			if err != nil {
				return err
			}

			if copySecret {
				if err = a.copyToClipboard(secret); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				a.printer.success("Secret copied to clipboard")
				return nil
			}

			a.printer.plain("%s", secret)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copySecret, "copy", "C", false, "Copy the secret to the clipboard instead of printing it")

	return cmd
}

func (a *application) updateCommand() *cobra.Command {
	var (
		generate bool
		length   int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			var secret string
			if generate {
				secret, err = policy.Generate(length, policy.NewMasterPolicy())
			} else {
				secret, err = a.prompt.newSecret("New secret")
			}
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			if err = services.VaultService.UpdateSecret(ctx, owner, args[0], secret); err != nil {
				return err
			}

			a.printer.success("Secret updated")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Generate the secret instead of reading it")
	cmd.Flags().IntVarP(&length, "length", "l", defaultGeneratedLength, "Length of a generated secret")

	return cmd
}

func (a *application) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <label>",
		Short: "Change the label of an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			if err = services.VaultService.RenameEntry(ctx, owner, args[0], args[1]); err != nil {
				return err
			}

			a.printer.success("Entry renamed")
			return nil
		},
	}
}

func (a *application) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, services, err := a.login(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			if err = services.VaultService.DeleteEntry(ctx, owner, args[0]); err != nil {
				return err
			}

			a.printer.success("Entry deleted")
			return nil
		},
	}
}
