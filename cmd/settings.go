package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

func newSettingsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update portal settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.service.Settings(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, settings)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dark mode: %t\n", settings.IsDarkMode)
			fmt.Fprintf(out, "Currency:  %s\n", settings.PreferredCurrency)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var (
		darkMode bool
		currency string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update portal settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.service.Settings(cmd.Context())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dark-mode") {
				settings.IsDarkMode = darkMode
			}
			if cmd.Flags().Changed("currency") {
				settings.PreferredCurrency = currency
			}

			if err := app.service.UpdateSettings(cmd.Context(), settings); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Settings updated")
			return err
		},
	}

	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Enable dark mode")
	cmd.Flags().StringVar(&currency, "currency", domain.DefaultSettings().PreferredCurrency, "Preferred currency code")

	return cmd
}
