package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/normalize"
)

type transactionWire struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"accountId"`
	UserID          string    `json:"userId"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	CategoryID      string    `json:"categoryId"`
	BillID          string    `json:"billId"`
	BudgetID        string    `json:"budgetId"`
	GoalID          string    `json:"goalId"`
	RecurringBillID string    `json:"recurringBillId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (w transactionWire) toModel() model.Transaction {
	return model.Transaction{
		ID:              w.ID,
		AccountID:       w.AccountID,
		UserID:          w.UserID,
		Type:            model.TransactionType(w.Type),
		Amount:          w.Amount,
		Description:     w.Description,
		TransactionDate: w.TransactionDate,
		CategoryID:      w.CategoryID,
		BillID:          w.BillID,
		BudgetID:        w.BudgetID,
		GoalID:          w.GoalID,
		RecurringBillID: w.RecurringBillID,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

// TransactionFilter defines filtering options for transaction queries.
// Zero values are omitted from the query string.
type TransactionFilter struct {
	UserID     string
	AccountID  string
	Type       model.TransactionType
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
	Offset     int
}

func (f TransactionFilter) query() url.Values {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("userId", f.UserID)
	}
	if f.AccountID != "" {
		q.Set("accountId", f.AccountID)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.StartDate != nil {
		q.Set("startDate", f.StartDate.Format(time.RFC3339))
	}
	if f.EndDate != nil {
		q.Set("endDate", f.EndDate.Format(time.RFC3339))
	}
	if f.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", f.Offset))
	}
	return q
}

// CreateTransactionRequest is the server-bound payload for a new
// transaction. Optional linkage fields use omitempty so empty-string
// client sentinels never reach the server.
type CreateTransactionRequest struct {
	AccountID       string                `json:"accountId"`
	UserID          string                `json:"userId"`
	Type            model.TransactionType `json:"type"`
	Amount          float64               `json:"amount"`
	Description     string                `json:"description"`
	TransactionDate time.Time             `json:"transactionDate"`
	CategoryID      string                `json:"categoryId,omitempty"`
	BillID          string                `json:"billId,omitempty"`
	BudgetID        string                `json:"budgetId,omitempty"`
	GoalID          string                `json:"goalId,omitempty"`
	RecurringBillID string                `json:"recurringBillId,omitempty"`
}

// TransactionPatch is a partial transaction update.
type TransactionPatch struct {
	Type            *model.TransactionType `json:"type,omitempty"`
	Amount          *float64               `json:"amount,omitempty"`
	Description     *string                `json:"description,omitempty"`
	TransactionDate *time.Time             `json:"transactionDate,omitempty"`
	CategoryID      *string                `json:"categoryId,omitempty"`
}

// ListTransactions fetches a filtered transaction view. Listing uses
// the paginated envelope; meta is nil when the server answers with a
// bare array.
func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, *model.Meta, error) {
	var body listBody[transactionWire]
	if err := c.do(ctx, "GET", "/transactions", filter.query(), nil, &body); err != nil {
		return nil, nil, err
	}

	result := normalize.List(body.payload())
	transactions := make([]model.Transaction, 0, len(result.Items))
	for _, w := range result.Items {
		transactions = append(transactions, w.toModel())
	}
	return transactions, result.Meta, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	var w transactionWire
	if err := c.do(ctx, "GET", "/transactions/"+id, nil, nil, &w); err != nil {
		return nil, err
	}
	txn := w.toModel()
	return &txn, nil
}

// CreateTransaction creates a transaction and returns the server's
// entity.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*model.Transaction, error) {
	var w transactionWire
	if err := c.do(ctx, "POST", "/transactions", nil, req, &w); err != nil {
		return nil, err
	}
	txn := w.toModel()
	return &txn, nil
}

// UpdateTransaction sends a partial patch and returns the updated
// entity.
func (c *Client) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error) {
	var w transactionWire
	if err := c.do(ctx, "PATCH", "/transactions/"+id, nil, patch, &w); err != nil {
		return nil, err
	}
	txn := w.toModel()
	return &txn, nil
}

// DeleteTransaction deletes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/transactions/"+id, nil, nil, nil)
}
