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

func TestAccountStore_RefreshReplacesCollection(t *testing.T) {
	mock := api.NewMock()
	mock.ListAccountsByUserFn = func(_ context.Context, userID string) ([]model.Account, error) {
		assert.Equal(t, "user-1", userID)
		return []model.Account{{ID: "a1"}, {ID: "a2"}}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "stale"}}

	s.Refresh(context.Background())

	require.Len(t, s.Accounts(), 2)
	assert.Equal(t, "a1", s.Accounts()[0].ID)
	assert.Empty(t, s.Err())
}

func TestAccountStore_RefreshWithoutUserClearsCollection(t *testing.T) {
	mock := api.NewMock()

	s := NewAccountStore(mock, StaticSession(""))
	s.accounts = []model.Account{{ID: "stale"}}

	s.Refresh(context.Background())

	assert.Empty(t, s.Accounts())
	assert.NotEmpty(t, s.Err(), "a user-facing message must be surfaced")
	assert.Zero(t, mock.Calls["ListAccountsByUser"], "no API call without an active user")
}

func TestAccountStore_RefreshFailureKeepsCollection(t *testing.T) {
	mock := api.NewMock()
	mock.ListAccountsByUserFn = func(context.Context, string) ([]model.Account, error) {
		return nil, common.ErrNetworkFailure
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "kept"}}

	s.Refresh(context.Background())

	require.Len(t, s.Accounts(), 1)
	assert.Equal(t, "kept", s.Accounts()[0].ID)
	assert.NotEmpty(t, s.Err())
}

func TestAccountStore_GetByIDSwallowsFailures(t *testing.T) {
	mock := api.NewMock()
	mock.GetAccountFn = func(context.Context, string) (*model.Account, error) {
		return nil, common.ErrNotFound
	}

	s := NewAccountStore(mock, StaticSession("user-1"))

	assert.Nil(t, s.GetByID(context.Background(), "missing"))
}

func TestAccountStore_CreateAppliesDefaults(t *testing.T) {
	var sent api.CreateAccountRequest
	mock := api.NewMock()
	mock.CreateAccountFn = func(_ context.Context, req api.CreateAccountRequest) (*model.Account, error) {
		sent = req
		return &model.Account{ID: "new", Name: req.Name}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))

	// All fields omitted: every default must be applied before dispatch.
	_, err := s.Create(context.Background(), CreateAccountInput{})

	require.NoError(t, err)
	assert.Equal(t, model.AccountTypePersonal, sent.AccountType)
	assert.Equal(t, model.DefaultAccountColor, sent.Color)
	assert.False(t, sent.IsPrivate)
	assert.True(t, sent.IsActive)
	assert.Equal(t, "user-1", sent.UserID)
}

func TestAccountStore_CreateHonorsExplicitFields(t *testing.T) {
	var sent api.CreateAccountRequest
	mock := api.NewMock()
	mock.CreateAccountFn = func(_ context.Context, req api.CreateAccountRequest) (*model.Account, error) {
		sent = req
		return &model.Account{ID: "new"}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	isPrivate := true
	isActive := false

	_, err := s.Create(context.Background(), CreateAccountInput{
		Name:        "Household",
		AccountType: model.AccountTypeShared,
		Color:       "#FF0000",
		IsPrivate:   &isPrivate,
		IsActive:    &isActive,
	})

	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeShared, sent.AccountType)
	assert.Equal(t, "#FF0000", sent.Color)
	assert.True(t, sent.IsPrivate)
	assert.False(t, sent.IsActive)
}

func TestAccountStore_CreateAppendsOnSuccessOnly(t *testing.T) {
	mock := api.NewMock()
	mock.CreateAccountFn = func(context.Context, api.CreateAccountRequest) (*model.Account, error) {
		return nil, common.ErrServerRejected
	}

	s := NewAccountStore(mock, StaticSession("user-1"))

	_, err := s.Create(context.Background(), CreateAccountInput{Name: "Broken"})

	require.Error(t, err)
	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr), "mutations surface user errors")
	assert.True(t, errors.Is(err, common.ErrServerRejected))
	assert.Empty(t, s.Accounts(), "never partially applies")
}

func TestAccountStore_CreateWithoutUser(t *testing.T) {
	s := NewAccountStore(api.NewMock(), StaticSession(""))

	_, err := s.Create(context.Background(), CreateAccountInput{Name: "X"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoActiveUser))
}

func TestAccountStore_UpdateReplacesByID(t *testing.T) {
	mock := api.NewMock()
	mock.UpdateAccountFn = func(_ context.Context, id string, _ api.AccountPatch) (*model.Account, error) {
		return &model.Account{ID: id, Name: "Renamed"}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1", Name: "Old"}, {ID: "a2", Name: "Other"}}

	name := "Renamed"
	_, err := s.Update(context.Background(), "a1", api.AccountPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", s.Accounts()[0].Name)
	assert.Equal(t, "Other", s.Accounts()[1].Name)
}

func TestAccountStore_UpdateFailureLeavesCollection(t *testing.T) {
	mock := api.NewMock()
	mock.UpdateAccountFn = func(context.Context, string, api.AccountPatch) (*model.Account, error) {
		return nil, common.ErrServerRejected
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1", Name: "Untouched"}}

	_, err := s.Update(context.Background(), "a1", api.AccountPatch{})

	require.Error(t, err)
	assert.Equal(t, "Untouched", s.Accounts()[0].Name)
}

func TestAccountStore_DeleteRemovesAfterConfirmation(t *testing.T) {
	mock := api.NewMock()

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1"}, {ID: "a2"}}

	require.NoError(t, s.Delete(context.Background(), "a1"))

	require.Len(t, s.Accounts(), 1)
	assert.Equal(t, "a2", s.Accounts()[0].ID)
}

func TestAccountStore_DeleteFailureLeavesCollection(t *testing.T) {
	mock := api.NewMock()
	mock.DeleteAccountFn = func(context.Context, string) error {
		return common.ErrNetworkFailure
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1"}}

	err := s.Delete(context.Background(), "a1")

	require.Error(t, err)
	assert.Len(t, s.Accounts(), 1)
}

func TestAccountStore_UpdateBalanceReappliesServerEntity(t *testing.T) {
	mock := api.NewMock()
	mock.UpdateBalanceFn = func(_ context.Context, id string, update api.BalanceUpdate) (*model.Account, error) {
		assert.Equal(t, api.BalanceAdd, update.Operation)
		// The server's arithmetic is authoritative, whatever it returns.
		return &model.Account{ID: id, CurrentBalance: 123.45}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1", CurrentBalance: 100}}

	account, err := s.UpdateBalance(context.Background(), "a1", api.BalanceUpdate{
		Amount:    50,
		Operation: api.BalanceAdd,
	})

	require.NoError(t, err)
	assert.InDelta(t, 123.45, account.CurrentBalance, 0.0001)
	assert.InDelta(t, 123.45, s.Accounts()[0].CurrentBalance, 0.0001)
}

func TestAccountStore_MemberTableConsistency(t *testing.T) {
	joined := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock := api.NewMock()
	mock.ListMembersFn = func(_ context.Context, accountID string) ([]model.AccountMember, error) {
		return []model.AccountMember{
			{ID: "m1", AccountID: accountID, UserID: "u1", Role: model.RoleOwner, JoinedAt: joined},
			{ID: "m2", AccountID: accountID, UserID: "u2", Role: model.RoleMember, JoinedAt: joined.Add(time.Hour)},
		}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	require.NoError(t, s.LoadMembers(context.Background(), "a1"))

	members := s.MembersOf("a1")
	require.Len(t, members, 2)
	assert.Equal(t, "m1", members[0].ID)
	assert.Equal(t, "m2", members[1].ID)
	assert.Empty(t, s.MembersOf("other-account"))

	// Reloading must not leave duplicate entries behind.
	require.NoError(t, s.LoadMembers(context.Background(), "a1"))
	assert.Len(t, s.MembersOf("a1"), 2)
}

func TestAccountStore_UpdateMemberNoStaleCopies(t *testing.T) {
	mock := api.NewMock()
	mock.UpdateMemberFn = func(_ context.Context, id string, _ api.MemberPatch) (*model.AccountMember, error) {
		return &model.AccountMember{
			ID:          id,
			AccountID:   "a1",
			UserID:      "u2",
			Role:        model.RoleAdmin,
			Permissions: []model.Permission{model.PermissionDeposit},
		}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.members["m2"] = model.AccountMember{ID: "m2", AccountID: "a1", UserID: "u2", Role: model.RoleMember}

	role := model.RoleAdmin
	_, err := s.UpdateMember(context.Background(), "m2", api.MemberPatch{Role: &role})

	require.NoError(t, err)
	members := s.MembersOf("a1")
	require.Len(t, members, 1, "one logical member, one entry")
	assert.Equal(t, model.RoleAdmin, members[0].Role)
}

func TestAccountStore_RemoveMember(t *testing.T) {
	mock := api.NewMock()

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.members["m1"] = model.AccountMember{ID: "m1", AccountID: "a1"}
	s.members["m2"] = model.AccountMember{ID: "m2", AccountID: "a1"}

	require.NoError(t, s.RemoveMember(context.Background(), "m1"))

	members := s.MembersOf("a1")
	require.Len(t, members, 1)
	assert.Equal(t, "m2", members[0].ID)
}

func TestAccountStore_CreateTransferTriggersRefresh(t *testing.T) {
	mock := api.NewMock()
	mock.ListAccountsByUserFn = func(context.Context, string) ([]model.Account, error) {
		// Server-computed balances after the transfer.
		return []model.Account{
			{ID: "a1", CurrentBalance: 50},
			{ID: "a2", CurrentBalance: 150},
		}, nil
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{
		{ID: "a1", CurrentBalance: 100},
		{ID: "a2", CurrentBalance: 100},
	}

	_, err := s.CreateTransfer(context.Background(), CreateTransferInput{
		FromAccountID: "a1",
		ToAccountID:   "a2",
		Amount:        50,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, mock.Calls["CreateTransfer"])
	assert.Equal(t, 1, mock.Calls["ListAccountsByUser"], "transfer must refetch, not patch locally")
	assert.InDelta(t, 50.0, s.Accounts()[0].CurrentBalance, 0.0001)
	assert.InDelta(t, 150.0, s.Accounts()[1].CurrentBalance, 0.0001)
}

func TestAccountStore_CreateTransferFailureNoRefresh(t *testing.T) {
	mock := api.NewMock()
	mock.CreateTransferFn = func(context.Context, api.CreateTransferRequest) (*model.AccountTransfer, error) {
		return nil, common.ErrServerRejected
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	s.accounts = []model.Account{{ID: "a1", CurrentBalance: 100}}

	_, err := s.CreateTransfer(context.Background(), CreateTransferInput{
		FromAccountID: "a1",
		ToAccountID:   "a2",
		Amount:        50,
	})

	require.Error(t, err)
	assert.Zero(t, mock.Calls["ListAccountsByUser"])
	assert.InDelta(t, 100.0, s.Accounts()[0].CurrentBalance, 0.0001)
}

func TestAccountStore_TransfersSurfacesErrors(t *testing.T) {
	mock := api.NewMock()
	mock.ListTransfersFn = func(context.Context, string) ([]model.AccountTransfer, *model.Meta, error) {
		return nil, nil, common.ErrNetworkFailure
	}

	s := NewAccountStore(mock, StaticSession("user-1"))
	assert.Nil(t, s.Transfers(context.Background()))
	assert.NotEmpty(t, s.Err())

	mock.ListTransfersFn = nil
	assert.NotNil(t, s.Transfers(context.Background()))
	assert.Empty(t, s.Err())
}

func TestAccountStore_TransfersNoActiveUser(t *testing.T) {
	mock := api.NewMock()
	s := NewAccountStore(mock, StaticSession(""))

	assert.Nil(t, s.Transfers(context.Background()))
	assert.NotEmpty(t, s.Err())
	assert.Zero(t, mock.Calls["ListTransfers"])
}
