package model

import "time"

// AccountTransfer is an immutable ledger entry moving an amount between
// two accounts. Transfers are created once and never mutated; the
// resulting balance changes are computed server-side.
type AccountTransfer struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	UserID        string
	Amount        float64
	Note          string
	CreatedAt     time.Time
}
