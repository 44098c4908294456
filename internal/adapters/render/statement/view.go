// Package statement renders transaction lists and account summaries for
// the terminal.
package statement

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

type RenderOptions struct {
	Title    string
	Currency string
}

func renderView(transactions []domain.Transaction, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Account Statement"
	}
	currency := opts.Currency
	if currency == "" {
		currency = "INR"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("transactions: %d", len(transactions))),
	}

	if len(transactions) == 0 {
		lines = append(lines, s.empty.Render("No transactions in this view."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, tx := range transactions {
		lines = append(lines, renderTransaction(tx, currency, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTransaction(tx domain.Transaction, currency string, s styles) string {
	date := s.date.Render(tx.Time().Format("02 Jan 2006 15:04"))
	desc := s.desc.Render(tx.Description)

	amount := fmt.Sprintf("%s %s", currency, domain.FormatAmount(tx.Amount))
	var directed string
	if tx.TransactionType == domain.TransactionCredit {
		directed = s.credit.Render("+" + amount)
	} else {
		directed = s.debit.Render("-" + amount)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, date, "  ", directed, "  ", desc)
}

// RenderOverview formats the balance plus monthly flows summary shown by
// the balance and health commands.
func RenderOverview(balance domain.Balance, health *domain.FinancialHealth, asOf time.Time) string {
	s := newStyles()

	lines := []string{
		s.title.Render("ArthaNidhi Account Overview"),
		s.balance.Render(fmt.Sprintf("Balance: %s %s", balance.Currency, domain.FormatAmount(balance.Amount))),
	}

	if health != nil {
		lines = append(lines,
			s.credit.Render(fmt.Sprintf("Credits (30d): %s %s", balance.Currency, domain.FormatAmount(health.MonthlyCredits))),
			s.debit.Render(fmt.Sprintf("Debits  (30d): %s %s", balance.Currency, domain.FormatAmount(health.MonthlyDebits))),
		)
	}

	if !asOf.IsZero() {
		lines = append(lines, s.header.Render("as of "+asOf.Format("02 Jan 2006 15:04:05")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
