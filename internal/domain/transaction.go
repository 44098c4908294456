package domain

import (
	"strings"
	"time"
)

// TransactionType is the caller-relative direction of a statement entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Transaction is a statement entry: a ledger record with its direction
// already derived for the requesting account.
type Transaction struct {
	ID              int64           `json:"id"`
	Timestamp       int64           `json:"timestamp"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
}

// TransactionRange filters a statement. Zero StartDate/EndDate mean
// unbounded; empty TransactionType means both directions.
type TransactionRange struct {
	StartDate       int64           `json:"startDate,omitempty"`
	EndDate         int64           `json:"endDate,omitempty"`
	TransactionType TransactionType `json:"transactionType,omitempty"`
}

// Matches reports whether the transaction falls inside the range.
func (r TransactionRange) Matches(tx Transaction) bool {
	if r.StartDate != 0 && tx.Timestamp < r.StartDate {
		return false
	}
	if r.EndDate != 0 && tx.Timestamp > r.EndDate {
		return false
	}
	if r.TransactionType != "" && tx.TransactionType != r.TransactionType {
		return false
	}

	return true
}

// DeriveTransaction converts a ledger record into a statement entry for
// the given account: credit when the record pays into it, debit otherwise.
func DeriveTransaction(record TransactionRecord, accountNumber string) Transaction {
	txType := TransactionDebit
	if record.ToAccount == accountNumber {
		txType = TransactionCredit
	}

	return Transaction{
		ID:              record.ID,
		Timestamp:       record.Timestamp,
		Amount:          record.Amount,
		TransactionType: txType,
		Description:     record.Description,
	}
}

// MatchesKeyword reports a case-insensitive substring match on the
// transaction description.
func (t Transaction) MatchesKeyword(keyword string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(keyword))
}

// Time converts the nanosecond epoch timestamp into a time.Time.
func (t Transaction) Time() time.Time {
	return time.Unix(0, t.Timestamp)
}
