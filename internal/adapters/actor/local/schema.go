package local

import (
	"fmt"
	"time"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

const currentSchemaVersion = 1

// Seed identity for the demo customer.
const (
	seedCustomerID    = "ARN-0001"
	seedAccountNumber = "ARN1100234567"
	seedName          = "Demo Customer"
	seedBalance       = 150000000 // paise, i.e. Rs 15,00,000.00
)

type ledgerSchema struct {
	Version      int                 `toml:"version"`
	Account      accountSchema       `toml:"account"`
	Transactions []transactionSchema `toml:"transactions"`
}

func (s *ledgerSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s ledgerSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported ledger schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	CustomerID       string `toml:"customer_id"`
	AccountNumber    string `toml:"account_number"`
	Name             string `toml:"name"`
	DateOfBirth      string `toml:"date_of_birth"`
	Address          string `toml:"address"`
	IDDocumentNumber string `toml:"id_document_number"`
	Balance          int64  `toml:"balance"`
}

type transactionSchema struct {
	ID          int64  `toml:"id"`
	FromAccount string `toml:"from_account"`
	ToAccount   string `toml:"to_account"`
	Amount      int64  `toml:"amount"`
	Description string `toml:"description"`
	Timestamp   int64  `toml:"timestamp"`
}

func (s *ledgerSchema) account() domain.Account {
	return domain.Account{
		CustomerID:         domain.CustomerID(s.Account.CustomerID),
		AccountNumber:      s.Account.AccountNumber,
		Name:               s.Account.Name,
		DateOfBirth:        s.Account.DateOfBirth,
		Address:            s.Account.Address,
		IDDocumentNumber:   s.Account.IDDocumentNumber,
		Balance:            s.Account.Balance,
		TransactionHistory: s.records(),
	}
}

func (s *ledgerSchema) records() []domain.TransactionRecord {
	records := make([]domain.TransactionRecord, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		records = append(records, domain.TransactionRecord{
			ID:          tx.ID,
			FromAccount: tx.FromAccount,
			ToAccount:   tx.ToAccount,
			Amount:      tx.Amount,
			Description: tx.Description,
			Timestamp:   tx.Timestamp,
		})
	}

	return records
}

func (s *ledgerSchema) append(tx transactionSchema) {
	s.Transactions = append(s.Transactions, tx)
}

func (s *ledgerSchema) nextID() int64 {
	var maxID int64
	for _, tx := range s.Transactions {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}

	return maxID + 1
}

// seedLedger builds the initial demo customer with a little history so
// statements and financial health have something to show.
func seedLedger(clock ports.Clock) ledgerSchema {
	now := clock.Now()

	return ledgerSchema{
		Version: currentSchemaVersion,
		Account: accountSchema{
			CustomerID:    seedCustomerID,
			AccountNumber: seedAccountNumber,
			Name:          seedName,
			Balance:       seedBalance,
		},
		Transactions: []transactionSchema{
			{
				ID:          1,
				FromAccount: "ARN1100987654",
				ToAccount:   seedAccountNumber,
				Amount:      7500000,
				Description: "Salary credit",
				Timestamp:   now.Add(-9 * 24 * time.Hour).UnixNano(),
			},
			{
				ID:          2,
				FromAccount: seedAccountNumber,
				ToAccount:   "ARN1100456789",
				Amount:      1299900,
				Description: "Rent payment",
				Timestamp:   now.Add(-6 * 24 * time.Hour).UnixNano(),
			},
			{
				ID:          3,
				FromAccount: seedAccountNumber,
				ToAccount:   "ARN1100765432",
				Amount:      84550,
				Description: "Grocery store",
				Timestamp:   now.Add(-2 * 24 * time.Hour).UnixNano(),
			},
		},
	}
}
