package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "login <customer-id>",
		Short: "Start a local session for a customer",
		Long:  "Stores a session record locally. In rest mode the customer id is sent as the bearer token on every request; this is the demo auth posture of the portal, not a hardened credential flow.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.service.Login(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the session")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the local session and drop the cached backend client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.CurrentSession(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					_, printErr := fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
					return printErr
				}
				return err
			}

			if session.Name != "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", session.Name, session.ID)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), session.ID)
			}
			return err
		},
	}
}
