package local

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func newTestActor(t *testing.T) *Actor {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	actor, err := NewActor(viper.New(), fixedClock{at: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	return actor
}

func TestGetCallerAccountSeedsDemoCustomer(t *testing.T) {
	actor := newTestActor(t)

	account, err := actor.GetCallerAccount(context.Background())
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.Equal(t, domain.CustomerID("ARN-0001"), account.CustomerID)
	assert.Equal(t, "ARN1100234567", account.AccountNumber)
	assert.Equal(t, int64(150000000), account.Balance)
	assert.Len(t, account.TransactionHistory, 3)
}

func TestDepositIncreasesBalanceAndAppendsRecord(t *testing.T) {
	actor := newTestActor(t)

	require.NoError(t, actor.Deposit(context.Background(), "ARN1100234567", 50000))

	account, err := actor.GetCallerAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(150050000), account.Balance)

	history, err := actor.GetTransactionHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 4)

	last := history[len(history)-1]
	assert.Equal(t, int64(4), last.ID)
	assert.Equal(t, "CASH-DEPOSIT", last.FromAccount)
	assert.Equal(t, "ARN1100234567", last.ToAccount)
	assert.Equal(t, int64(50000), last.Amount)
}

func TestDepositToUnknownAccountFails(t *testing.T) {
	actor := newTestActor(t)

	err := actor.Deposit(context.Background(), "ARN9999999999", 50000)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	actor := newTestActor(t)

	require.Error(t, actor.Deposit(context.Background(), "ARN1100234567", 0))
	require.Error(t, actor.Deposit(context.Background(), "ARN1100234567", -5))
}

func TestTransferDebitsBalance(t *testing.T) {
	actor := newTestActor(t)

	require.NoError(t, actor.Transfer(context.Background(), "ARN1100234567", "ARN1100456789", 100000, "dinner split"))

	account, err := actor.GetCallerAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(149900000), account.Balance)

	history, err := actor.GetTransactionHistory(context.Background())
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, "dinner split", last.Description)
	assert.Equal(t, "ARN1100456789", last.ToAccount)
}

func TestTransferBeyondBalanceFails(t *testing.T) {
	actor := newTestActor(t)

	err := actor.Transfer(context.Background(), "ARN1100234567", "ARN1100456789", 150000001, "too much")
	require.ErrorIs(t, err, ErrInsufficientFunds)

	account, err := actor.GetCallerAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), account.Balance)
}

func TestSaveCallerAccountKeepsBackendOwnedFields(t *testing.T) {
	actor := newTestActor(t)

	require.NoError(t, actor.SaveCallerAccount(context.Background(), domain.Account{
		CustomerID:    "FORGED",
		AccountNumber: "FORGED",
		Name:          "Priya Sharma",
		Address:       "12 MG Road, Bengaluru",
		Balance:       1,
	}))

	account, err := actor.GetCallerAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", account.Name)
	assert.Equal(t, "12 MG Road, Bengaluru", account.Address)
	assert.Equal(t, domain.CustomerID("ARN-0001"), account.CustomerID)
	assert.Equal(t, "ARN1100234567", account.AccountNumber)
	assert.Equal(t, int64(150000000), account.Balance)
}

func TestLedgerPersistsAcrossActorInstances(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	clock := fixedClock{at: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}

	first, err := NewActor(viper.New(), clock)
	require.NoError(t, err)
	require.NoError(t, first.Deposit(context.Background(), "ARN1100234567", 25000))

	second, err := NewActor(viper.New(), clock)
	require.NoError(t, err)

	account, err := second.GetCallerAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(150025000), account.Balance)
}

func TestGetCallerUserRole(t *testing.T) {
	actor := newTestActor(t)

	role, err := actor.GetCallerUserRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)
}
