package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the customer profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.service.Account(cmd.Context())
			if err != nil {
				return err
			}

			if account == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No profile on record")
				return err
			}

			if asJSON {
				return writeJSON(cmd, account)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:           %s\n", account.Name)
			fmt.Fprintf(out, "Customer ID:    %s\n", account.CustomerID)
			fmt.Fprintf(out, "Account number: %s\n", account.AccountNumber)
			if account.Address != "" {
				fmt.Fprintf(out, "Address:        %s\n", account.Address)
			}
			if account.DateOfBirth != "" {
				fmt.Fprintf(out, "Date of birth:  %s\n", account.DateOfBirth)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(newProfileSetNameCmd(app))

	return cmd
}

func newProfileSetNameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-name <name>",
		Short: "Update the display name, preserving the rest of the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.UpdateProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return err
		},
	}
}
