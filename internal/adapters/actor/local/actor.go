// Package local is a file-backed stand-in for the canister actor so the
// portal works end-to-end in ic mode without a deployed backend. It keeps
// a single demo customer in a TOML ledger under the user's home directory,
// mirroring the browser-storage demo data of the original portal.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	ledgerPathKey   = "ledger.path"
	ledgerFileMode  = 0o600
	ledgerDirMode   = 0o700
	configDir       = ".arthanidhi"
	ledgerFile      = "demo-ledger.toml"
	tempFilePattern = ".demo-ledger-*.toml.tmp"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

type Actor struct {
	ledgerPath string
	clock      ports.Clock
	mu         sync.Mutex
}

var _ ports.Actor = (*Actor)(nil)

// NewActor resolves the ledger path from the optional config file at
// ~/.arthanidhi/config.toml, defaulting to ~/.arthanidhi/demo-ledger.toml.
func NewActor(cfg *viper.Viper, clock ports.Clock) (*Actor, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDir, ledgerFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(ledgerPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	ledgerPath := cfg.GetString(ledgerPathKey)
	if ledgerPath == "" {
		return nil, errors.New("ledger path is empty")
	}
	ledgerPath, err = filepath.Abs(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("resolve ledger path: %w", err)
	}

	return &Actor{ledgerPath: filepath.Clean(ledgerPath), clock: clock}, nil
}

func (a *Actor) GetCallerAccount(ctx context.Context) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ledger, err := a.readLedger()
	if err != nil {
		return nil, err
	}

	account := ledger.account()
	return &account, nil
}

func (a *Actor) SaveCallerAccount(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ledger, err := a.readLedger()
	if err != nil {
		return err
	}

	// Identity and ledger fields are backend-owned; only the profile
	// fields of the saved record are taken.
	ledger.Account.Name = account.Name
	ledger.Account.DateOfBirth = account.DateOfBirth
	ledger.Account.Address = account.Address
	ledger.Account.IDDocumentNumber = account.IDDocumentNumber

	return a.writeLedger(ledger)
}

func (a *Actor) GetTransactionHistory(ctx context.Context) ([]domain.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ledger, err := a.readLedger()
	if err != nil {
		return nil, err
	}

	return ledger.records(), nil
}

func (a *Actor) Deposit(ctx context.Context, accountNumber string, amount int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ledger, err := a.readLedger()
	if err != nil {
		return err
	}
	if ledger.Account.AccountNumber != accountNumber {
		return domain.ErrAccountNotFound
	}

	ledger.Account.Balance += amount
	ledger.append(transactionSchema{
		ID:          ledger.nextID(),
		FromAccount: "CASH-DEPOSIT",
		ToAccount:   accountNumber,
		Amount:      amount,
		Description: "Cash deposit",
		Timestamp:   a.clock.Now().UnixNano(),
	})

	return a.writeLedger(ledger)
}

func (a *Actor) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ledger, err := a.readLedger()
	if err != nil {
		return err
	}
	if ledger.Account.AccountNumber != fromAccount {
		return domain.ErrAccountNotFound
	}
	if ledger.Account.Balance < amount {
		return ErrInsufficientFunds
	}

	ledger.Account.Balance -= amount
	ledger.append(transactionSchema{
		ID:          ledger.nextID(),
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		Description: description,
		Timestamp:   a.clock.Now().UnixNano(),
	})

	return a.writeLedger(ledger)
}

func (a *Actor) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return domain.RoleUser, nil
}

func (a *Actor) readLedger() (ledgerSchema, error) {
	data, err := os.ReadFile(a.ledgerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return seedLedger(a.clock), nil
		}
		return ledgerSchema{}, fmt.Errorf("read demo ledger: %w", err)
	}

	var ledger ledgerSchema
	if err := toml.Unmarshal(data, &ledger); err != nil {
		return ledgerSchema{}, fmt.Errorf("decode demo ledger: %w", err)
	}
	if err := ledger.validateVersion(); err != nil {
		return ledgerSchema{}, err
	}
	ledger.applyDefaults()

	return ledger, nil
}

func (a *Actor) writeLedger(ledger ledgerSchema) error {
	ledger.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(a.ledgerPath), ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	data, err := toml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode demo ledger: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(a.ledgerPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp ledger file: %w", err)
	}

	if err := tempFile.Chmod(ledgerFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp ledger file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tempName, a.ledgerPath); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}

	cleanup = false

	return nil
}
