package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/policy"
)

func (a *application) checkCommand() *cobra.Command {
	var entry, rules bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Rate a password against the master (or entry) policy",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine := policy.NewMasterPolicy()
			if entry {
				engine = policy.NewEntryPolicy()
			}

			if rules {
				for _, r := range engine.Requirements() {
					a.printer.plain("- %s", r)
				}
				return nil
			}

			password, err := a.prompt.secret("Password: ")
			if err != nil {
				return err
			}

			verdict := engine.Evaluate(password)
			a.printer.plain("Strength: %s (%d%%, score %d/%d)", verdict.Tier, verdict.Tier.Percent(), verdict.Score, verdict.MaxScore)
			if verdict.Valid {
				a.printer.success("Meets every requirement")
				return nil
			}
			for _, s := range verdict.Suggestions(engine) {
				a.printer.warn("%s", s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&entry, "entry", false, "Use the entry secret policy")
	cmd.Flags().BoolVar(&rules, "requirements", false, "List the policy requirements without reading a password")

	return cmd
}

func (a *application) generateCommand() *cobra.Command {
	var (
		length     int
		copySecret bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password that meets the master policy",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			password, err := policy.Generate(length, policy.NewMasterPolicy())
			if err != nil {
				return err
			}

			if copySecret {
				if err = a.copyToClipboard(password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				a.printer.success("Password copied to clipboard")
				return nil
			}

			a.printer.plain("%s", password)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", defaultGeneratedLength,
		fmt.Sprintf("Password length (%d-%d)", policy.MinGeneratedLength, policy.MaxGeneratedLength))
	cmd.Flags().BoolVarP(&copySecret, "copy", "C", false, "Copy the password to the clipboard instead of printing it")

	return cmd
}

func (a *application) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			if err = db.Migrate(ctx); err != nil {
				return err
			}

			a.printer.success("Database %s is up to date", db.Driver())
			return nil
		},
	}
}

func (a *application) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(a.printer.out, a.build.String())
			return nil
		},
	}
}
