package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/common"
	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStore_RefreshReplacesCollectionAndMeta(t *testing.T) {
	meta := &model.Meta{Page: 1, Limit: 20, Total: 2, TotalPages: 1}
	mock := api.NewMock()
	mock.ListTransactionsFn = func(_ context.Context, filter api.TransactionFilter) ([]model.Transaction, *model.Meta, error) {
		assert.Equal(t, "user-1", filter.UserID)
		return []model.Transaction{{ID: "t1"}, {ID: "t2"}}, meta, nil
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))
	s.transactions = []model.Transaction{{ID: "stale"}}

	s.Refresh(context.Background())

	require.Len(t, s.Transactions(), 2)
	assert.Equal(t, meta, s.Meta())
	assert.Empty(t, s.Err())
}

func TestTransactionStore_RefreshClearsStaleMeta(t *testing.T) {
	mock := api.NewMock()
	mock.ListTransactionsFn = func(context.Context, api.TransactionFilter) ([]model.Transaction, *model.Meta, error) {
		// Flat array this time: no meta.
		return []model.Transaction{{ID: "t1"}}, nil, nil
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))
	s.meta = &model.Meta{Page: 3, TotalPages: 9}

	s.Refresh(context.Background())

	assert.Nil(t, s.Meta(), "pagination metadata from a previous state must not survive")
}

func TestTransactionStore_RefreshWithoutUser(t *testing.T) {
	mock := api.NewMock()

	s := NewTransactionStore(mock, StaticSession(""))
	s.transactions = []model.Transaction{{ID: "stale"}}
	s.meta = &model.Meta{Page: 1}

	s.Refresh(context.Background())

	assert.Empty(t, s.Transactions())
	assert.Nil(t, s.Meta())
	assert.NotEmpty(t, s.Err())
	assert.Zero(t, mock.Calls["ListTransactions"])
}

func TestTransactionStore_ListDoesNotTouchPrimaryCollection(t *testing.T) {
	mock := api.NewMock()
	mock.ListTransactionsFn = func(_ context.Context, filter api.TransactionFilter) ([]model.Transaction, *model.Meta, error) {
		if filter.AccountID == "a1" {
			return []model.Transaction{{ID: "filtered"}}, &model.Meta{Page: 1}, nil
		}
		return []model.Transaction{{ID: "primary"}}, nil, nil
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))
	s.Refresh(context.Background())
	require.Len(t, s.Transactions(), 1)

	view := s.List(context.Background(), api.TransactionFilter{AccountID: "a1"})

	require.Len(t, view, 1)
	assert.Equal(t, "filtered", view[0].ID)
	assert.Equal(t, "primary", s.Transactions()[0].ID, "primary collection untouched")
	assert.Nil(t, s.Meta(), "meta of filtered views is discarded")
}

func TestTransactionStore_ListFailureDegradesToEmpty(t *testing.T) {
	mock := api.NewMock()
	mock.ListTransactionsFn = func(context.Context, api.TransactionFilter) ([]model.Transaction, *model.Meta, error) {
		return nil, nil, common.ErrNetworkFailure
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))

	view := s.List(context.Background(), api.TransactionFilter{AccountID: "a1"})

	assert.Empty(t, view)
	assert.NotEmpty(t, s.Err())

	// A later successful list clears the stale error.
	mock.ListTransactionsFn = nil
	s.List(context.Background(), api.TransactionFilter{AccountID: "a1"})
	assert.Empty(t, s.Err())
}

func TestTransactionStore_CreateAppends(t *testing.T) {
	var sent api.CreateTransactionRequest
	mock := api.NewMock()
	mock.CreateTransactionFn = func(_ context.Context, req api.CreateTransactionRequest) (*model.Transaction, error) {
		sent = req
		return &model.Transaction{ID: "new", Amount: req.Amount}, nil
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.Create(context.Background(), CreateTransactionInput{
		AccountID:       "a1",
		Type:            model.TransactionExpense,
		Amount:          42.5,
		Description:     "Groceries",
		TransactionDate: date,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", sent.UserID)
	assert.Empty(t, sent.CategoryID, "unset optional fields stay empty and are omitted on the wire")
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "new", s.Transactions()[0].ID)
}

func TestTransactionStore_CreateFailure(t *testing.T) {
	mock := api.NewMock()
	mock.CreateTransactionFn = func(context.Context, api.CreateTransactionRequest) (*model.Transaction, error) {
		return nil, common.ErrServerRejected
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))

	_, err := s.Create(context.Background(), CreateTransactionInput{AccountID: "a1"})

	require.Error(t, err)
	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr))
	assert.Empty(t, s.Transactions())
}

func TestTransactionStore_UpdateReplacesByID(t *testing.T) {
	mock := api.NewMock()
	mock.UpdateTransactionFn = func(_ context.Context, id string, _ api.TransactionPatch) (*model.Transaction, error) {
		return &model.Transaction{ID: id, Description: "Patched"}, nil
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))
	s.transactions = []model.Transaction{{ID: "t1", Description: "Old"}, {ID: "t2"}}

	desc := "Patched"
	_, err := s.Update(context.Background(), "t1", api.TransactionPatch{Description: &desc})

	require.NoError(t, err)
	assert.Equal(t, "Patched", s.Transactions()[0].Description)
	require.Len(t, s.Transactions(), 2)
}

func TestTransactionStore_DeleteAfterConfirmationOnly(t *testing.T) {
	mock := api.NewMock()
	mock.DeleteTransactionFn = func(context.Context, string) error {
		return common.ErrServerRejected
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))
	s.transactions = []model.Transaction{{ID: "t1"}}

	require.Error(t, s.Delete(context.Background(), "t1"))
	assert.Len(t, s.Transactions(), 1)

	mock.DeleteTransactionFn = nil
	require.NoError(t, s.Delete(context.Background(), "t1"))
	assert.Empty(t, s.Transactions())
}

func TestTransactionStore_GetByIDSwallowsFailures(t *testing.T) {
	mock := api.NewMock()
	mock.GetTransactionFn = func(context.Context, string) (*model.Transaction, error) {
		return nil, common.ErrNotFound
	}

	s := NewTransactionStore(mock, StaticSession("user-1"))

	assert.Nil(t, s.GetByID(context.Background(), "missing"))
}
