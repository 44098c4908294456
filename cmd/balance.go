package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/adapters/render/statement"
)

func newBalanceCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			balance, err := app.service.Balance(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, balance)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), statement.RenderOverview(balance, nil, app.now()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newHealthCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show balance with trailing-30-day credit and debit totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := app.service.FinancialHealth(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, health)
			}

			balance, err := app.service.Balance(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), statement.RenderOverview(balance, &health, app.now()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
