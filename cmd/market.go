package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

func newMarketCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Market data: indices, mutual funds, stocks",
	}

	cmd.AddCommand(
		newMarketSummaryCmd(app),
		newMutualFundsCmd(app),
		newStocksCmd(app),
	)

	return cmd
}

func newMarketSummaryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show index and commodity snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.MarketSummary(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			for _, entry := range summary {
				fmt.Fprintf(out, "%-8s %-18s %12s  %+0.2f%% (%s)\n",
					entry.Symbol, entry.Name, domain.FormatAmount(entry.Price), entry.ChangePercent, entry.MarketLabel)
			}
			if len(summary) == 0 {
				fmt.Fprintln(out, "No market data available")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newMutualFundsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Show mutual fund NAVs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			funds, err := app.service.MutualFunds(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, funds)
			}

			out := cmd.OutOrStdout()
			for _, fund := range funds {
				fmt.Fprintf(out, "%-30s %-12s NAV %10s  1Y %+0.1f%%\n",
					fund.Name, fund.Category, domain.FormatAmount(fund.NAV), fund.OneYearReturn)
			}
			if len(funds) == 0 {
				fmt.Fprintln(out, "No mutual fund data available")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newStocksCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stocks",
		Short: "Show stock quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stocks, err := app.service.Stocks(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stocks)
			}

			out := cmd.OutOrStdout()
			for _, stock := range stocks {
				fmt.Fprintf(out, "%-6s %-28s %12s  %+0.2f%% (%s)\n",
					stock.Symbol, stock.Company, domain.FormatAmount(stock.Price), stock.ChangePercent, stock.Market)
			}
			if len(stocks) == 0 {
				fmt.Fprintln(out, "No stock data available")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
