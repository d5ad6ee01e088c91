package api

import (
	"context"
	"fmt"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/normalize"
)

type accountWire struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	Name           string      `json:"name"`
	AccountType    string      `json:"accountType"`
	Color          string      `json:"color"`
	CurrentBalance float64     `json:"currentBalance"`
	StartAmount    float64     `json:"startAmount"`
	IsPrivate      bool        `json:"isPrivate"`
	IsActive       bool        `json:"isActive"`
	ShareCode      string      `json:"shareCode"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	DeletedAt      *time.Time  `json:"deletedAt"`
}

func (w accountWire) toModel() model.Account {
	return model.Account{
		ID:             w.ID,
		UserID:         w.UserID,
		Name:           w.Name,
		AccountType:    model.AccountType(w.AccountType),
		Color:          w.Color,
		CurrentBalance: w.CurrentBalance,
		StartAmount:    w.StartAmount,
		IsPrivate:      w.IsPrivate,
		IsActive:       w.IsActive,
		ShareCode:      w.ShareCode,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		DeletedAt:      w.DeletedAt,
	}
}

type memberWire struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	UserID      string          `json:"userId"`
	Role        string          `json:"role"`
	Permissions permissionsWire `json:"permissions"`
	JoinedAt    time.Time       `json:"joinedAt"`
}

func (w memberWire) toModel() model.AccountMember {
	return model.AccountMember{
		ID:          w.ID,
		AccountID:   w.AccountID,
		UserID:      w.UserID,
		Role:        model.Role(w.Role),
		Permissions: w.Permissions.toModel(),
		JoinedAt:    w.JoinedAt,
	}
}

type transferWire struct {
	ID            string    `json:"id"`
	FromAccountID string    `json:"fromAccountId"`
	ToAccountID   string    `json:"toAccountId"`
	UserID        string    `json:"userId"`
	Amount        float64   `json:"amount"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (w transferWire) toModel() model.AccountTransfer {
	return model.AccountTransfer{
		ID:            w.ID,
		FromAccountID: w.FromAccountID,
		ToAccountID:   w.ToAccountID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		Note:          w.Note,
		CreatedAt:     w.CreatedAt,
	}
}

// CreateAccountRequest is the server-bound payload for a new account.
// The store applies creation defaults before dispatch; optional fields
// with omitempty are dropped from the wire form when unset.
type CreateAccountRequest struct {
	UserID      string            `json:"userId"`
	Name        string            `json:"name"`
	AccountType model.AccountType `json:"accountType"`
	Color       string            `json:"color"`
	StartAmount float64           `json:"startAmount"`
	IsPrivate   bool              `json:"isPrivate"`
	IsActive    bool              `json:"isActive"`
	ShareCode   string            `json:"shareCode,omitempty"`
}

// AccountPatch is a partial update; nil fields are left untouched
// server-side.
type AccountPatch struct {
	Name        *string            `json:"name,omitempty"`
	AccountType *model.AccountType `json:"accountType,omitempty"`
	Color       *string            `json:"color,omitempty"`
	IsPrivate   *bool              `json:"isPrivate,omitempty"`
	IsActive    *bool              `json:"isActive,omitempty"`
}

// BalanceOperation selects the server-side arithmetic for a balance
// update.
type BalanceOperation string

// Balance operations.
const (
	BalanceAdd      BalanceOperation = "add"
	BalanceSubtract BalanceOperation = "subtract"
	BalanceSet      BalanceOperation = "set"
)

// BalanceUpdate adjusts an account balance server-side. The client
// never computes the new balance itself.
type BalanceUpdate struct {
	Amount    float64          `json:"amount"`
	Operation BalanceOperation `json:"operation"`
	Note      string           `json:"note,omitempty"`
}

// AddMemberRequest adds a user to a shared account.
type AddMemberRequest struct {
	AccountID   string
	UserID      string
	Role        model.Role
	Permissions []model.Permission
}

// MemberPatch is a partial member update. Permissions, when non-nil,
// replaces the full permission set.
type MemberPatch struct {
	Role        *model.Role
	Permissions []model.Permission
}

// CreateTransferRequest moves an amount between two accounts.
type CreateTransferRequest struct {
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	UserID        string  `json:"userId"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note,omitempty"`
}

// ListAccountsByUser fetches every account held by a user. The endpoint
// returns a bare array.
func (c *Client) ListAccountsByUser(ctx context.Context, userID string) ([]model.Account, error) {
	var body listBody[accountWire]
	if err := c.do(ctx, "GET", "/accounts/user/"+userID, nil, nil, &body); err != nil {
		return nil, err
	}

	result := normalize.List(body.payload())
	accounts := make([]model.Account, 0, len(result.Items))
	for _, w := range result.Items {
		accounts = append(accounts, w.toModel())
	}
	return accounts, nil
}

// GetAccount fetches a single account by id.
func (c *Client) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	var w accountWire
	if err := c.do(ctx, "GET", "/accounts/"+id, nil, nil, &w); err != nil {
		return nil, err
	}
	account := w.toModel()
	return &account, nil
}

// CreateAccount creates an account and returns the server's entity.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*model.Account, error) {
	var w accountWire
	if err := c.do(ctx, "POST", "/accounts", nil, req, &w); err != nil {
		return nil, err
	}
	account := w.toModel()
	return &account, nil
}

// UpdateAccount sends a partial patch and returns the updated entity.
func (c *Client) UpdateAccount(ctx context.Context, id string, patch AccountPatch) (*model.Account, error) {
	var w accountWire
	if err := c.do(ctx, "PATCH", "/accounts/"+id, nil, patch, &w); err != nil {
		return nil, err
	}
	account := w.toModel()
	return &account, nil
}

// DeleteAccount soft-deletes an account.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/accounts/"+id, nil, nil, nil)
}

// UpdateBalance applies a balance operation server-side and returns the
// resulting account.
func (c *Client) UpdateBalance(ctx context.Context, id string, update BalanceUpdate) (*model.Account, error) {
	var w accountWire
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/accounts/%s/balance", id), nil, update, &w); err != nil {
		return nil, err
	}
	account := w.toModel()
	return &account, nil
}

// ListMembers fetches the member list of an account. Permissions arrive
// in either wire form and come back canonical.
func (c *Client) ListMembers(ctx context.Context, accountID string) ([]model.AccountMember, error) {
	var body listBody[memberWire]
	if err := c.do(ctx, "GET", "/account-members/account/"+accountID, nil, nil, &body); err != nil {
		return nil, err
	}

	result := normalize.List(body.payload())
	members := make([]model.AccountMember, 0, len(result.Items))
	for _, w := range result.Items {
		members = append(members, w.toModel())
	}
	return members, nil
}

// AddMember adds a member to a shared account.
func (c *Client) AddMember(ctx context.Context, req AddMemberRequest) (*model.AccountMember, error) {
	payload := struct {
		AccountID   string             `json:"accountId"`
		UserID      string             `json:"userId"`
		Role        model.Role         `json:"role"`
		Permissions permissionFlagsOut `json:"permissions"`
	}{
		AccountID:   req.AccountID,
		UserID:      req.UserID,
		Role:        req.Role,
		Permissions: flagsFromTags(req.Permissions),
	}

	var w memberWire
	if err := c.do(ctx, "POST", "/account-members", nil, payload, &w); err != nil {
		return nil, err
	}
	member := w.toModel()
	return &member, nil
}

// UpdateMember patches a member's role and/or permission set.
func (c *Client) UpdateMember(ctx context.Context, id string, patch MemberPatch) (*model.AccountMember, error) {
	payload := struct {
		Role        *model.Role         `json:"role,omitempty"`
		Permissions *permissionFlagsOut `json:"permissions,omitempty"`
	}{
		Role: patch.Role,
	}
	if patch.Permissions != nil {
		flags := flagsFromTags(patch.Permissions)
		payload.Permissions = &flags
	}

	var w memberWire
	if err := c.do(ctx, "PATCH", "/account-members/"+id, nil, payload, &w); err != nil {
		return nil, err
	}
	member := w.toModel()
	return &member, nil
}

// RemoveMember removes a member from its account.
func (c *Client) RemoveMember(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/account-members/"+id, nil, nil, nil)
}

// ListTransfers fetches a user's transfers. The endpoint may answer
// with a bare array or a paginated envelope.
func (c *Client) ListTransfers(ctx context.Context, userID string) ([]model.AccountTransfer, *model.Meta, error) {
	var body listBody[transferWire]
	if err := c.do(ctx, "GET", "/account-transfers/user/"+userID, nil, nil, &body); err != nil {
		return nil, nil, err
	}

	result := normalize.List(body.payload())
	transfers := make([]model.AccountTransfer, 0, len(result.Items))
	for _, w := range result.Items {
		transfers = append(transfers, w.toModel())
	}
	return transfers, result.Meta, nil
}

// CreateTransfer creates an immutable transfer between two accounts.
func (c *Client) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*model.AccountTransfer, error) {
	var w transferWire
	if err := c.do(ctx, "POST", "/account-transfers", nil, req, &w); err != nil {
		return nil, err
	}
	transfer := w.toModel()
	return &transfer, nil
}
