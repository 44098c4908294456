// Package actor implements the BackendClient contract over a canister
// actor handle. Operations the canister exposes delegate one-to-one;
// statement, search, and financial-health views are derived locally from
// the raw transaction history. Operations the canister does not support
// are explicit capability gaps: they return demo values or reject with
// domain.ErrNotImplemented rather than pretending to persist.
package actor

import (
	"context"
	"fmt"
	"time"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

// monthlyWindow is the trailing window for the financial-health sums, in
// nanoseconds to match ledger timestamps.
const monthlyWindow = 30 * 24 * time.Hour

type Client struct {
	actor ports.Actor
	clock ports.Clock
}

var _ ports.BackendClient = (*Client)(nil)

func NewClient(handle ports.Actor, clock ports.Clock) (*Client, error) {
	if handle == nil {
		return nil, domain.ErrActorRequired
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Client{actor: handle, clock: clock}, nil
}

func (c *Client) GetCallerAccount(ctx context.Context) (*domain.Account, error) {
	return c.actor.GetCallerAccount(ctx)
}

func (c *Client) SaveCallerAccount(ctx context.Context, account domain.Account) error {
	return c.actor.SaveCallerAccount(ctx, account)
}

// UpdateProfile rewrites only the display name, preserving every other
// field of the existing record. With no record yet it constructs a fresh
// profile with empty optional fields.
func (c *Client) UpdateProfile(ctx context.Context, displayName string) error {
	account, err := c.actor.GetCallerAccount(ctx)
	if err != nil {
		return fmt.Errorf("load profile for update: %w", err)
	}

	if account == nil {
		account = &domain.Account{}
	}
	account.Name = displayName

	return c.actor.SaveCallerAccount(ctx, *account)
}

func (c *Client) GetBalance(ctx context.Context) (domain.Balance, error) {
	account, err := c.actor.GetCallerAccount(ctx)
	if err != nil {
		return domain.Balance{}, err
	}

	balance := domain.Balance{Currency: "INR"}
	if account != nil {
		balance.Amount = account.Balance
	}

	return balance, nil
}

func (c *Client) GetStatement(ctx context.Context, rng *domain.TransactionRange) ([]domain.Transaction, error) {
	statement, err := c.deriveStatement(ctx)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		return statement, nil
	}

	filtered := make([]domain.Transaction, 0, len(statement))
	for _, tx := range statement {
		if rng.Matches(tx) {
			filtered = append(filtered, tx)
		}
	}

	return filtered, nil
}

func (c *Client) SearchTransactions(ctx context.Context, keyword string) ([]domain.Transaction, error) {
	statement, err := c.deriveStatement(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Transaction, 0, len(statement))
	for _, tx := range statement {
		if tx.MatchesKeyword(keyword) {
			matches = append(matches, tx)
		}
	}

	return matches, nil
}

func (c *Client) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error {
	return c.actor.Transfer(ctx, fromAccount, toAccount, amount, description)
}

// GetFinancialHealth sums credits and debits over the trailing 30 days of
// history, directions taken relative to the caller's account number.
func (c *Client) GetFinancialHealth(ctx context.Context) (domain.FinancialHealth, error) {
	account, err := c.actor.GetCallerAccount(ctx)
	if err != nil {
		return domain.FinancialHealth{}, err
	}
	if account == nil {
		return domain.FinancialHealth{}, nil
	}

	history, err := c.actor.GetTransactionHistory(ctx)
	if err != nil {
		return domain.FinancialHealth{}, err
	}

	health := domain.FinancialHealth{Balance: account.Balance}
	cutoff := c.clock.Now().UnixNano() - monthlyWindow.Nanoseconds()

	for _, record := range history {
		if record.Timestamp < cutoff {
			continue
		}
		if record.ToAccount == account.AccountNumber {
			health.MonthlyCredits += record.Amount
		} else {
			health.MonthlyDebits += record.Amount
		}
	}

	return health, nil
}

// Market data has no canister equivalent; fixed demo values stand in.
func (c *Client) GetMarketSummary(ctx context.Context) ([]domain.MarketData, error) {
	return demoMarketSummary(), nil
}

func (c *Client) GetMutualFunds(ctx context.Context) ([]domain.MutualFund, error) {
	return demoMutualFunds(), nil
}

func (c *Client) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	return demoStocks(), nil
}

func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	return domain.DefaultSettings(), nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	return fmt.Errorf("update settings via canister: %w", domain.ErrNotImplemented)
}

// Deposit resolves the caller's account number first; the canister call
// requires it explicitly.
func (c *Client) Deposit(ctx context.Context, amount int64, description string) error {
	account, err := c.actor.GetCallerAccount(ctx)
	if err != nil {
		return fmt.Errorf("resolve account for deposit: %w", err)
	}
	if account == nil || account.AccountNumber == "" {
		return domain.ErrAccountNotFound
	}

	return c.actor.Deposit(ctx, account.AccountNumber, amount)
}

func (c *Client) Withdraw(ctx context.Context, amount int64, description string) error {
	return fmt.Errorf("withdraw via canister: %w", domain.ErrNotImplemented)
}

func (c *Client) deriveStatement(ctx context.Context) ([]domain.Transaction, error) {
	account, err := c.actor.GetCallerAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return []domain.Transaction{}, nil
	}

	history, err := c.actor.GetTransactionHistory(ctx)
	if err != nil {
		return nil, err
	}

	statement := make([]domain.Transaction, 0, len(history))
	for _, record := range history {
		statement = append(statement, domain.DeriveTransaction(record, account.AccountNumber))
	}

	return statement, nil
}
