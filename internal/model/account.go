// Package model defines the canonical in-memory entities shared across
// the client. Wire representations live in the api package; everything
// here is already normalized.
package model

import "time"

// AccountType classifies how an account is used.
type AccountType string

// Supported account types.
const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeShared   AccountType = "shared"
	AccountTypeBusiness AccountType = "business"
)

// DefaultAccountColor is applied when an account is created without an
// explicit color.
const DefaultAccountColor = "#14B8A6"

// Account represents a single money account owned by a user.
// Accounts are soft-deleted server-side: DeletedAt is set, the row is
// never physically removed.
type Account struct {
	ID             string
	UserID         string
	Name           string
	AccountType    AccountType
	Color          string
	CurrentBalance float64
	StartAmount    float64
	IsPrivate      bool
	IsActive       bool
	ShareCode      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsShared reports whether the account can have members beyond its owner.
func (a Account) IsShared() bool {
	return a.AccountType == AccountTypeShared
}
