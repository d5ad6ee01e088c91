package model

import "time"

// TypeKind scopes a Type to one dimension of classification.
type TypeKind string

// Type kinds.
const (
	TypeKindIncome  TypeKind = "income"
	TypeKindExpense TypeKind = "expense"
	TypeKindCustom  TypeKind = "custom"
)

// Type is a named, colored, iconized tag used to classify transactions.
// System types are provided by the server and shared by all users;
// user types carry the owning UserID.
type Type struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	Icon      string
	Kind      TypeKind
	IsSystem  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
