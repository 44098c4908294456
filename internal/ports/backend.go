package ports

import (
	"context"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

// BackendClient is the capability contract both transports implement.
// A nil *domain.Account from the profile reads means the caller has no
// account record yet; it is not an error.
type BackendClient interface {
	GetCallerAccount(ctx context.Context) (*domain.Account, error)
	SaveCallerAccount(ctx context.Context, account domain.Account) error
	UpdateProfile(ctx context.Context, displayName string) error

	GetBalance(ctx context.Context) (domain.Balance, error)

	GetStatement(ctx context.Context, rng *domain.TransactionRange) ([]domain.Transaction, error)
	SearchTransactions(ctx context.Context, keyword string) ([]domain.Transaction, error)
	Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error

	GetFinancialHealth(ctx context.Context) (domain.FinancialHealth, error)

	GetMarketSummary(ctx context.Context) ([]domain.MarketData, error)
	GetMutualFunds(ctx context.Context) ([]domain.MutualFund, error)
	GetStocks(ctx context.Context) ([]domain.Stock, error)

	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) error

	Deposit(ctx context.Context, amount int64, description string) error
	Withdraw(ctx context.Context, amount int64, description string) error
}
