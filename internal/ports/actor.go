package ports

import (
	"context"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

// Actor is the remote-call handle exposed by the canister backend. This
// layer only consumes it; the real implementation lives in an external
// process and is injected by the caller.
type Actor interface {
	GetCallerAccount(ctx context.Context) (*domain.Account, error)
	SaveCallerAccount(ctx context.Context, account domain.Account) error
	GetTransactionHistory(ctx context.Context) ([]domain.TransactionRecord, error)
	Deposit(ctx context.Context, accountNumber string, amount int64) error
	Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error
	GetCallerUserRole(ctx context.Context) (domain.UserRole, error)
}
