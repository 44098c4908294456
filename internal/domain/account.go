package domain

// CustomerID identifies a bank customer across both backends.
type CustomerID string

// Account is the customer record owned by the backend. Monetary fields are
// int64 amounts in the smallest currency unit (paise for INR); timestamps
// are nanoseconds since epoch. Both conventions follow the wire contract.
type Account struct {
	CustomerID         CustomerID          `json:"customerId"`
	AccountNumber      string              `json:"accountNumber"`
	Name               string              `json:"name"`
	DateOfBirth        string              `json:"dateOfBirth"`
	Address            string              `json:"address"`
	IDDocumentNumber   string              `json:"idDocumentNumber"`
	Balance            int64               `json:"balance"`
	TransactionHistory []TransactionRecord `json:"transactionHistory"`
}

// TransactionRecord is a raw ledger entry as the backend stores it. The
// credit/debit direction is not recorded; it is derived per caller by
// comparing ToAccount against the caller's own account number.
type TransactionRecord struct {
	ID          int64  `json:"id"`
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}

// Balance pairs an amount with its currency code.
type Balance struct {
	Amount   int64  `json:"balance"`
	Currency string `json:"currency"`
}

// FinancialHealth is the derived balance-plus-trailing-30-day aggregate.
type FinancialHealth struct {
	Balance        int64 `json:"balance"`
	MonthlyCredits int64 `json:"monthlyCredits"`
	MonthlyDebits  int64 `json:"monthlyDebits"`
}

// UserRole mirrors the canister's role enum.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)
