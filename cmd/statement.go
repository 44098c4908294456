package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/adapters/render/statement"
	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

func newStatementCmd(app *app) *cobra.Command {
	var (
		fromDate string
		toDate   string
		txType   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Show the account statement, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := buildRange(fromDate, toDate, txType)
			if err != nil {
				return err
			}

			var transactions []domain.Transaction
			fetch := func(ctx context.Context) error {
				var fetchErr error
				transactions, fetchErr = app.service.Statement(ctx, rng)
				return fetchErr
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, transactions)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching statement...", fetch); err != nil {
				return err
			}

			rendered, err := app.statementRenderer(transactions, statement.RenderOptions{Title: "Account Statement"})
			if err != nil {
				return fmt.Errorf("render statement: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by direction: credit or debit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSearchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search transactions by description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var transactions []domain.Transaction
			fetch := func(ctx context.Context) error {
				var fetchErr error
				transactions, fetchErr = app.service.SearchTransactions(ctx, args[0])
				return fetchErr
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, transactions)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching transactions...", fetch); err != nil {
				return err
			}

			rendered, err := app.statementRenderer(transactions, statement.RenderOptions{
				Title: fmt.Sprintf("Transactions matching %q", args[0]),
			})
			if err != nil {
				return fmt.Errorf("render search results: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func buildRange(fromDate, toDate, txType string) (*domain.TransactionRange, error) {
	start, err := parseDate(fromDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(toDate)
	if err != nil {
		return nil, err
	}

	var direction domain.TransactionType
	switch txType {
	case "":
	case string(domain.TransactionCredit):
		direction = domain.TransactionCredit
	case string(domain.TransactionDebit):
		direction = domain.TransactionDebit
	default:
		return nil, fmt.Errorf("invalid transaction type %q (want credit or debit)", txType)
	}

	if start == 0 && end == 0 && direction == "" {
		return nil, nil
	}

	return &domain.TransactionRange{StartDate: start, EndDate: end, TransactionType: direction}, nil
}
