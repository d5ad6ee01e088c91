package store

import (
	"context"
	"time"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/common"
	"github.com/krapaoshare/krapao-go/internal/model"
)

// TransactionStore holds the canonical transaction collection together
// with the pagination metadata of the last refresh.
type TransactionStore struct {
	api     api.TransactionAPI
	session Session

	transactions []model.Transaction
	meta         *model.Meta
	loadErr      string
}

// CreateTransactionInput is a partial client draft for a new
// transaction. Empty optional linkage ids are dropped from the wire
// payload, never sent as empty strings.
type CreateTransactionInput struct {
	AccountID       string
	Type            model.TransactionType
	Amount          float64
	Description     string
	TransactionDate time.Time
	CategoryID      string
	BillID          string
	BudgetID        string
	GoalID          string
	RecurringBillID string
}

// NewTransactionStore creates a transaction store backed by the given
// API client and session.
func NewTransactionStore(client api.TransactionAPI, session Session) *TransactionStore {
	return &TransactionStore{api: client, session: session}
}

// Transactions returns the current collection.
func (s *TransactionStore) Transactions() []model.Transaction {
	return s.transactions
}

// Meta returns the pagination metadata of the last refresh, nil when
// the server answered with a flat array.
func (s *TransactionStore) Meta() *model.Meta {
	return s.meta
}

// Err returns the user-facing message from the last failed refresh or
// list, or empty.
func (s *TransactionStore) Err() string {
	return s.loadErr
}

// Refresh replaces the collection with the current user's transactions.
// Pagination metadata from a previous state is cleared when the new
// response lacks it.
func (s *TransactionStore) Refresh(ctx context.Context) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		s.transactions = nil
		s.meta = nil
		s.loadErr = "Please sign in to view your transactions."
		common.LogDebug("transaction refresh skipped", common.Fields{"reason": common.ErrNoActiveUser.Error()})
		return
	}

	transactions, meta, err := s.api.ListTransactions(ctx, api.TransactionFilter{UserID: userID})
	if err != nil {
		s.loadErr = "Unable to load your transactions. Please try again."
		common.LogError(err, "failed to refresh transactions", common.Fields{"user_id": userID})
		return
	}

	s.transactions = transactions
	s.meta = meta
	s.loadErr = ""
}

// GetByID fetches a single transaction; nil on any failure (logged).
func (s *TransactionStore) GetByID(ctx context.Context, id string) *model.Transaction {
	txn, err := s.api.GetTransaction(ctx, id)
	if err != nil {
		common.LogError(err, "failed to fetch transaction", common.Fields{"transaction_id": id})
		return nil
	}
	return txn
}

// List fetches a filtered view without touching the primary collection.
// Meta is discarded; failures degrade to an empty result with the
// error surfaced via Err.
func (s *TransactionStore) List(ctx context.Context, filter api.TransactionFilter) []model.Transaction {
	transactions, _, err := s.api.ListTransactions(ctx, filter)
	if err != nil {
		s.loadErr = "Unable to load transactions for this view. Please try again."
		common.LogError(err, "failed to list transactions", common.Fields{"account_id": filter.AccountID})
		return nil
	}

	s.loadErr = ""
	return transactions
}

// Create submits a new transaction draft and appends the server's
// entity on success. Nothing is applied on failure.
func (s *TransactionStore) Create(ctx context.Context, input CreateTransactionInput) (*model.Transaction, error) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		return nil, common.NewUserError("Please sign in to record a transaction.", common.ErrNoActiveUser)
	}

	txn, err := s.api.CreateTransaction(ctx, api.CreateTransactionRequest{
		AccountID:       input.AccountID,
		UserID:          userID,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: input.TransactionDate,
		CategoryID:      input.CategoryID,
		BillID:          input.BillID,
		BudgetID:        input.BudgetID,
		GoalID:          input.GoalID,
		RecurringBillID: input.RecurringBillID,
	})
	if err != nil {
		return nil, common.NewUserError("Unable to record the transaction. Please try again.", err)
	}

	s.transactions = append(s.transactions, *txn)
	return txn, nil
}

// Update sends a partial patch and replaces the matching entity on
// success.
func (s *TransactionStore) Update(ctx context.Context, id string, patch api.TransactionPatch) (*model.Transaction, error) {
	txn, err := s.api.UpdateTransaction(ctx, id, patch)
	if err != nil {
		return nil, common.NewUserError("Unable to update the transaction. Please try again.", err)
	}

	s.transactions = replaceByID(s.transactions, id, transactionID, *txn)
	return txn, nil
}

// Delete removes the transaction locally only after server
// confirmation.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		return common.NewUserError("Unable to delete the transaction. Please try again.", err)
	}

	s.transactions = removeByID(s.transactions, id, transactionID)
	return nil
}

func transactionID(t model.Transaction) string {
	return t.ID
}
