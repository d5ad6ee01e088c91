package api

import (
	"context"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// Mock is a test double for the API client. Each method delegates to
// the corresponding function field when set and falls back to an empty
// success otherwise. Call counts are tracked per method.
type Mock struct {
	ListAccountsByUserFn func(ctx context.Context, userID string) ([]model.Account, error)
	GetAccountFn         func(ctx context.Context, id string) (*model.Account, error)
	CreateAccountFn      func(ctx context.Context, req CreateAccountRequest) (*model.Account, error)
	UpdateAccountFn      func(ctx context.Context, id string, patch AccountPatch) (*model.Account, error)
	DeleteAccountFn      func(ctx context.Context, id string) error
	UpdateBalanceFn      func(ctx context.Context, id string, update BalanceUpdate) (*model.Account, error)

	ListMembersFn  func(ctx context.Context, accountID string) ([]model.AccountMember, error)
	AddMemberFn    func(ctx context.Context, req AddMemberRequest) (*model.AccountMember, error)
	UpdateMemberFn func(ctx context.Context, id string, patch MemberPatch) (*model.AccountMember, error)
	RemoveMemberFn func(ctx context.Context, id string) error

	ListTransfersFn  func(ctx context.Context, userID string) ([]model.AccountTransfer, *model.Meta, error)
	CreateTransferFn func(ctx context.Context, req CreateTransferRequest) (*model.AccountTransfer, error)

	ListTransactionsFn  func(ctx context.Context, filter TransactionFilter) ([]model.Transaction, *model.Meta, error)
	GetTransactionFn    func(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransactionFn func(ctx context.Context, req CreateTransactionRequest) (*model.Transaction, error)
	UpdateTransactionFn func(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error)
	DeleteTransactionFn func(ctx context.Context, id string) error

	ListTypesByUserFn func(ctx context.Context, userID string) ([]model.Type, *model.Meta, error)
	GetTypeFn         func(ctx context.Context, id string) (*model.Type, error)
	CreateTypeFn      func(ctx context.Context, req CreateTypeRequest) (*model.Type, error)
	UpdateTypeFn      func(ctx context.Context, id string, patch TypePatch) (*model.Type, error)
	DeleteTypeFn      func(ctx context.Context, id string) error

	ListNotificationsFn        func(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationReadFn     func(ctx context.Context, id string) error
	MarkAllNotificationsReadFn func(ctx context.Context, userID string) error
	DeleteNotificationFn       func(ctx context.Context, id string) error

	Calls map[string]int
}

// NewMock creates a mock API client.
func NewMock() *Mock {
	return &Mock{Calls: make(map[string]int)}
}

func (m *Mock) record(method string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

// ListAccountsByUser implements AccountAPI.
func (m *Mock) ListAccountsByUser(ctx context.Context, userID string) ([]model.Account, error) {
	m.record("ListAccountsByUser")
	if m.ListAccountsByUserFn != nil {
		return m.ListAccountsByUserFn(ctx, userID)
	}
	return []model.Account{}, nil
}

// GetAccount implements AccountAPI.
func (m *Mock) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	m.record("GetAccount")
	if m.GetAccountFn != nil {
		return m.GetAccountFn(ctx, id)
	}
	return &model.Account{ID: id}, nil
}

// CreateAccount implements AccountAPI.
func (m *Mock) CreateAccount(ctx context.Context, req CreateAccountRequest) (*model.Account, error) {
	m.record("CreateAccount")
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, req)
	}
	return &model.Account{
		Name:        req.Name,
		UserID:      req.UserID,
		AccountType: req.AccountType,
		Color:       req.Color,
		StartAmount: req.StartAmount,
		IsPrivate:   req.IsPrivate,
		IsActive:    req.IsActive,
	}, nil
}

// UpdateAccount implements AccountAPI.
func (m *Mock) UpdateAccount(ctx context.Context, id string, patch AccountPatch) (*model.Account, error) {
	m.record("UpdateAccount")
	if m.UpdateAccountFn != nil {
		return m.UpdateAccountFn(ctx, id, patch)
	}
	return &model.Account{ID: id}, nil
}

// DeleteAccount implements AccountAPI.
func (m *Mock) DeleteAccount(ctx context.Context, id string) error {
	m.record("DeleteAccount")
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, id)
	}
	return nil
}

// UpdateBalance implements AccountAPI.
func (m *Mock) UpdateBalance(ctx context.Context, id string, update BalanceUpdate) (*model.Account, error) {
	m.record("UpdateBalance")
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, id, update)
	}
	return &model.Account{ID: id}, nil
}

// ListMembers implements AccountAPI.
func (m *Mock) ListMembers(ctx context.Context, accountID string) ([]model.AccountMember, error) {
	m.record("ListMembers")
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx, accountID)
	}
	return []model.AccountMember{}, nil
}

// AddMember implements AccountAPI.
func (m *Mock) AddMember(ctx context.Context, req AddMemberRequest) (*model.AccountMember, error) {
	m.record("AddMember")
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, req)
	}
	return &model.AccountMember{
		AccountID:   req.AccountID,
		UserID:      req.UserID,
		Role:        req.Role,
		Permissions: req.Permissions,
	}, nil
}

// UpdateMember implements AccountAPI.
func (m *Mock) UpdateMember(ctx context.Context, id string, patch MemberPatch) (*model.AccountMember, error) {
	m.record("UpdateMember")
	if m.UpdateMemberFn != nil {
		return m.UpdateMemberFn(ctx, id, patch)
	}
	return &model.AccountMember{ID: id}, nil
}

// RemoveMember implements AccountAPI.
func (m *Mock) RemoveMember(ctx context.Context, id string) error {
	m.record("RemoveMember")
	if m.RemoveMemberFn != nil {
		return m.RemoveMemberFn(ctx, id)
	}
	return nil
}

// ListTransfers implements AccountAPI.
func (m *Mock) ListTransfers(ctx context.Context, userID string) ([]model.AccountTransfer, *model.Meta, error) {
	m.record("ListTransfers")
	if m.ListTransfersFn != nil {
		return m.ListTransfersFn(ctx, userID)
	}
	return []model.AccountTransfer{}, nil, nil
}

// CreateTransfer implements AccountAPI.
func (m *Mock) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*model.AccountTransfer, error) {
	m.record("CreateTransfer")
	if m.CreateTransferFn != nil {
		return m.CreateTransferFn(ctx, req)
	}
	return &model.AccountTransfer{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		Note:          req.Note,
	}, nil
}

// ListTransactions implements TransactionAPI.
func (m *Mock) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, *model.Meta, error) {
	m.record("ListTransactions")
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, filter)
	}
	return []model.Transaction{}, nil, nil
}

// GetTransaction implements TransactionAPI.
func (m *Mock) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	m.record("GetTransaction")
	if m.GetTransactionFn != nil {
		return m.GetTransactionFn(ctx, id)
	}
	return &model.Transaction{ID: id}, nil
}

// CreateTransaction implements TransactionAPI.
func (m *Mock) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*model.Transaction, error) {
	m.record("CreateTransaction")
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, req)
	}
	return &model.Transaction{
		AccountID:       req.AccountID,
		UserID:          req.UserID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		CategoryID:      req.CategoryID,
	}, nil
}

// UpdateTransaction implements TransactionAPI.
func (m *Mock) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error) {
	m.record("UpdateTransaction")
	if m.UpdateTransactionFn != nil {
		return m.UpdateTransactionFn(ctx, id, patch)
	}
	return &model.Transaction{ID: id}, nil
}

// DeleteTransaction implements TransactionAPI.
func (m *Mock) DeleteTransaction(ctx context.Context, id string) error {
	m.record("DeleteTransaction")
	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, id)
	}
	return nil
}

// ListTypesByUser implements TypeAPI.
func (m *Mock) ListTypesByUser(ctx context.Context, userID string) ([]model.Type, *model.Meta, error) {
	m.record("ListTypesByUser")
	if m.ListTypesByUserFn != nil {
		return m.ListTypesByUserFn(ctx, userID)
	}
	return []model.Type{}, nil, nil
}

// GetType implements TypeAPI.
func (m *Mock) GetType(ctx context.Context, id string) (*model.Type, error) {
	m.record("GetType")
	if m.GetTypeFn != nil {
		return m.GetTypeFn(ctx, id)
	}
	return &model.Type{ID: id}, nil
}

// CreateType implements TypeAPI.
func (m *Mock) CreateType(ctx context.Context, req CreateTypeRequest) (*model.Type, error) {
	m.record("CreateType")
	if m.CreateTypeFn != nil {
		return m.CreateTypeFn(ctx, req)
	}
	return &model.Type{
		UserID: req.UserID,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
		Kind:   req.Kind,
	}, nil
}

// UpdateType implements TypeAPI.
func (m *Mock) UpdateType(ctx context.Context, id string, patch TypePatch) (*model.Type, error) {
	m.record("UpdateType")
	if m.UpdateTypeFn != nil {
		return m.UpdateTypeFn(ctx, id, patch)
	}
	return &model.Type{ID: id}, nil
}

// DeleteType implements TypeAPI.
func (m *Mock) DeleteType(ctx context.Context, id string) error {
	m.record("DeleteType")
	if m.DeleteTypeFn != nil {
		return m.DeleteTypeFn(ctx, id)
	}
	return nil
}

// ListNotifications implements NotificationAPI.
func (m *Mock) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	m.record("ListNotifications")
	if m.ListNotificationsFn != nil {
		return m.ListNotificationsFn(ctx, userID)
	}
	return []model.Notification{}, nil
}

// MarkNotificationRead implements NotificationAPI.
func (m *Mock) MarkNotificationRead(ctx context.Context, id string) error {
	m.record("MarkNotificationRead")
	if m.MarkNotificationReadFn != nil {
		return m.MarkNotificationReadFn(ctx, id)
	}
	return nil
}

// MarkAllNotificationsRead implements NotificationAPI.
func (m *Mock) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	m.record("MarkAllNotificationsRead")
	if m.MarkAllNotificationsReadFn != nil {
		return m.MarkAllNotificationsReadFn(ctx, userID)
	}
	return nil
}

// DeleteNotification implements NotificationAPI.
func (m *Mock) DeleteNotification(ctx context.Context, id string) error {
	m.record("DeleteNotification")
	if m.DeleteNotificationFn != nil {
		return m.DeleteNotificationFn(ctx, id)
	}
	return nil
}

// Reset clears all call tracking.
func (m *Mock) Reset() {
	m.Calls = make(map[string]int)
}

// Ensure Mock implements every store-facing interface.
var (
	_ AccountAPI      = (*Mock)(nil)
	_ TransactionAPI  = (*Mock)(nil)
	_ TypeAPI         = (*Mock)(nil)
	_ NotificationAPI = (*Mock)(nil)
)
