package api

import (
	"context"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// AccountAPI defines the account, member and transfer calls the account
// store depends on. This interface allows for easy mocking in tests.
type AccountAPI interface {
	ListAccountsByUser(ctx context.Context, userID string) ([]model.Account, error)
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*model.Account, error)
	UpdateAccount(ctx context.Context, id string, patch AccountPatch) (*model.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	UpdateBalance(ctx context.Context, id string, update BalanceUpdate) (*model.Account, error)

	ListMembers(ctx context.Context, accountID string) ([]model.AccountMember, error)
	AddMember(ctx context.Context, req AddMemberRequest) (*model.AccountMember, error)
	UpdateMember(ctx context.Context, id string, patch MemberPatch) (*model.AccountMember, error)
	RemoveMember(ctx context.Context, id string) error

	ListTransfers(ctx context.Context, userID string) ([]model.AccountTransfer, *model.Meta, error)
	CreateTransfer(ctx context.Context, req CreateTransferRequest) (*model.AccountTransfer, error)
}

// TransactionAPI defines the calls the transaction store depends on.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, *model.Meta, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TypeAPI defines the calls the type store depends on.
type TypeAPI interface {
	ListTypesByUser(ctx context.Context, userID string) ([]model.Type, *model.Meta, error)
	GetType(ctx context.Context, id string) (*model.Type, error)
	CreateType(ctx context.Context, req CreateTypeRequest) (*model.Type, error)
	UpdateType(ctx context.Context, id string, patch TypePatch) (*model.Type, error)
	DeleteType(ctx context.Context, id string) error
}

// NotificationAPI defines the notification calls the panel's side
// effects depend on.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, id string) error
}

// Compile-time checks that Client satisfies every store-facing
// interface.
var (
	_ AccountAPI      = (*Client)(nil)
	_ TransactionAPI  = (*Client)(nil)
	_ TypeAPI         = (*Client)(nil)
	_ NotificationAPI = (*Client)(nil)
)
