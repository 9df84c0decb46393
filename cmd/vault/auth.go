package main

import (
	"github.com/spf13/cobra"
)

func (a *application) registerCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create a vault account",
		Example: `  vault register --user alice --email alice@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, err := a.username()
			if err != nil {
				return err
			}

			password, err := a.prompt.newSecret("Master password")
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			services, err := a.open(ctx)
			if err != nil {
				return err
			}

			verdict := services.AuthService.EvaluatePassword(password)
			owner, err := services.AuthService.Register(ctx, username, email, password)
			if err != nil {
				return err
			}

			a.printer.success("Registered %s (%s master password)", username, verdict.Tier)
			a.log.Info().Str("func", "registerCommand").Int64("user_id", owner.UserID()).Msg("account registered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *application) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := a.login(cmd); err != nil {
				return err
			}
			a.printer.success("Master password accepted for %s", a.cfg.App.Username)
			return nil
		},
	}
}

func (a *application) passwdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, err := a.username()
			if err != nil {
				return err
			}

			current, err := a.prompt.secret("Current master password: ")
			if err != nil {
				return err
			}
			next, err := a.prompt.newSecret("New master password")
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			services, err := a.open(ctx)
			if err != nil {
				return err
			}

			owner, err := services.AuthService.Login(ctx, username, current)
			if err != nil {
				return err
			}
			if err = services.AuthService.ChangePassword(ctx, owner, current, next); err != nil {
				return err
			}

			a.printer.success("Master password changed")
			return nil
		},
	}
}

func (a *application) resetCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the master password of the account registered with an email",
		Long: `reset replaces the master password without asking for the old one. It
only rewrites the credential record; proving control of the address is up
to whoever runs the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			next, err := a.prompt.newSecret("New master password")
			if err != nil {
				return err
			}

			ctx, cancel := a.storageContext(cmd)
			defer cancel()

			services, err := a.open(ctx)
			if err != nil {
				return err
			}
			if err = services.AuthService.ResetPassword(ctx, email, next); err != nil {
				return err
			}

			a.printer.success("Master password replaced")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address of the account (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
