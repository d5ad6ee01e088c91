package model

import "time"

// TransactionType determines the sign of a transaction's effect on its
// account. Amount itself is always non-negative.
type TransactionType string

// Supported transaction types.
const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single ledger entry on an account.
// Optional linkage fields are empty strings when unset; they are
// dropped from wire payloads rather than sent as empty strings.
type Transaction struct {
	ID              string
	AccountID       string
	UserID          string
	Type            TransactionType
	Amount          float64
	Description     string
	TransactionDate time.Time
	CategoryID      string
	BillID          string
	BudgetID        string
	GoalID          string
	RecurringBillID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for income, negative for expense, zero-effect types pass
// through unchanged.
func (t Transaction) SignedAmount() float64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}
