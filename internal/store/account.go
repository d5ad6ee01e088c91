package store

import (
	"context"
	"sort"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/common"
	"github.com/krapaoshare/krapao-go/internal/model"
)

// AccountStore holds the canonical account collection plus a normalized
// member table keyed by member id. Account membership is a derived
// index over that table, so a member update or removal can never leave
// duplicate or stale copies behind.
type AccountStore struct {
	api     api.AccountAPI
	session Session

	accounts []model.Account
	members  map[string]model.AccountMember
	loadErr  string
}

// CreateAccountInput is a partial client draft for a new account.
// Unset fields receive the creation defaults before dispatch:
// accountType personal, the default color, isPrivate false, isActive
// true.
type CreateAccountInput struct {
	Name        string
	AccountType model.AccountType
	Color       string
	StartAmount float64
	IsPrivate   *bool
	IsActive    *bool
	ShareCode   string
}

// AddMemberInput adds a user to one of the store's shared accounts.
type AddMemberInput struct {
	AccountID   string
	UserID      string
	Role        model.Role
	Permissions []model.Permission
}

// CreateTransferInput moves an amount between two accounts. The balance
// effect is computed server-side; creating a transfer always triggers a
// full account refresh instead of patching balances locally.
type CreateTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        float64
	Note          string
}

// NewAccountStore creates an account store backed by the given API
// client and session.
func NewAccountStore(client api.AccountAPI, session Session) *AccountStore {
	return &AccountStore{
		api:     client,
		session: session,
		members: make(map[string]model.AccountMember),
	}
}

// Accounts returns the current collection. Valid until the next
// mutation.
func (s *AccountStore) Accounts() []model.Account {
	return s.accounts
}

// Err returns the user-facing message from the last failed refresh, or
// empty when the last refresh succeeded.
func (s *AccountStore) Err() string {
	return s.loadErr
}

// Refresh replaces the whole collection with the server's view. With no
// active user the collection is cleared and a user-facing error is
// surfaced via Err; Refresh itself never returns an error.
func (s *AccountStore) Refresh(ctx context.Context) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		s.accounts = nil
		s.loadErr = "Please sign in to view your accounts."
		common.LogDebug("account refresh skipped", common.Fields{"reason": common.ErrNoActiveUser.Error()})
		return
	}

	accounts, err := s.api.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.loadErr = "Unable to load your accounts. Please try again."
		common.LogError(err, "failed to refresh accounts", common.Fields{"user_id": userID})
		return
	}

	s.accounts = accounts
	s.loadErr = ""
}

// GetByID fetches a single account. Fetch failures are logged and
// reported as absence so callers treat "not found" and "network error"
// uniformly.
func (s *AccountStore) GetByID(ctx context.Context, id string) *model.Account {
	account, err := s.api.GetAccount(ctx, id)
	if err != nil {
		common.LogError(err, "failed to fetch account", common.Fields{"account_id": id})
		return nil
	}
	return account
}

// Create submits a new account draft and appends the server's entity to
// the collection on success. Nothing is applied on failure.
func (s *AccountStore) Create(ctx context.Context, input CreateAccountInput) (*model.Account, error) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		return nil, common.NewUserError("Please sign in to create an account.", common.ErrNoActiveUser)
	}

	req := api.CreateAccountRequest{
		UserID:      userID,
		Name:        input.Name,
		AccountType: input.AccountType,
		Color:       input.Color,
		StartAmount: input.StartAmount,
		IsPrivate:   false,
		IsActive:    true,
		ShareCode:   input.ShareCode,
	}
	if req.AccountType == "" {
		req.AccountType = model.AccountTypePersonal
	}
	if req.Color == "" {
		req.Color = model.DefaultAccountColor
	}
	if input.IsPrivate != nil {
		req.IsPrivate = *input.IsPrivate
	}
	if input.IsActive != nil {
		req.IsActive = *input.IsActive
	}

	account, err := s.api.CreateAccount(ctx, req)
	if err != nil {
		return nil, common.NewUserError("Unable to create the account. Please try again.", err)
	}

	s.accounts = append(s.accounts, *account)
	return account, nil
}

// Update sends a partial patch and replaces the matching entity on
// success. The collection is untouched on failure.
func (s *AccountStore) Update(ctx context.Context, id string, patch api.AccountPatch) (*model.Account, error) {
	account, err := s.api.UpdateAccount(ctx, id, patch)
	if err != nil {
		return nil, common.NewUserError("Unable to update the account. Please try again.", err)
	}

	s.accounts = replaceByID(s.accounts, id, accountID, *account)
	return account, nil
}

// Delete removes the account locally only after server confirmation.
func (s *AccountStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteAccount(ctx, id); err != nil {
		return common.NewUserError("Unable to delete the account. Please try again.", err)
	}

	s.accounts = removeByID(s.accounts, id, accountID)
	return nil
}

// UpdateBalance applies a balance operation server-side and re-applies
// the returned entity. The client never computes the new balance
// itself, avoiding drift.
func (s *AccountStore) UpdateBalance(ctx context.Context, id string, update api.BalanceUpdate) (*model.Account, error) {
	account, err := s.api.UpdateBalance(ctx, id, update)
	if err != nil {
		return nil, common.NewUserError("Unable to update the balance. Please try again.", err)
	}

	s.accounts = replaceByID(s.accounts, id, accountID, *account)
	return account, nil
}

// LoadMembers fetches an account's member list and replaces that
// account's slice of the member table.
func (s *AccountStore) LoadMembers(ctx context.Context, accountID string) error {
	members, err := s.api.ListMembers(ctx, accountID)
	if err != nil {
		return common.NewUserError("Unable to load the account members. Please try again.", err)
	}

	for id, m := range s.members {
		if m.AccountID == accountID {
			delete(s.members, id)
		}
	}
	for _, m := range members {
		s.members[m.ID] = m
	}
	return nil
}

// MembersOf returns the derived member index for one account, ordered
// by join time.
func (s *AccountStore) MembersOf(accountID string) []model.AccountMember {
	var members []model.AccountMember
	for _, m := range s.members {
		if m.AccountID == accountID {
			members = append(members, m)
		}
	}

	sort.Slice(members, func(i, j int) bool {
		if !members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].JoinedAt.Before(members[j].JoinedAt)
		}
		return members[i].ID < members[j].ID
	})
	return members
}

// AddMember adds a member to a shared account and records the server's
// entity in the member table.
func (s *AccountStore) AddMember(ctx context.Context, input AddMemberInput) (*model.AccountMember, error) {
	member, err := s.api.AddMember(ctx, api.AddMemberRequest{
		AccountID:   input.AccountID,
		UserID:      input.UserID,
		Role:        input.Role,
		Permissions: input.Permissions,
	})
	if err != nil {
		return nil, common.NewUserError("Unable to add the member. Please try again.", err)
	}

	s.members[member.ID] = *member
	return member, nil
}

// UpdateMember patches a member and replaces its single table entry.
// Because the table is keyed by member id, the update is visible from
// every derived index at once.
func (s *AccountStore) UpdateMember(ctx context.Context, id string, patch api.MemberPatch) (*model.AccountMember, error) {
	member, err := s.api.UpdateMember(ctx, id, patch)
	if err != nil {
		return nil, common.NewUserError("Unable to update the member. Please try again.", err)
	}

	s.members[member.ID] = *member
	return member, nil
}

// RemoveMember deletes a member after server confirmation.
func (s *AccountStore) RemoveMember(ctx context.Context, id string) error {
	if err := s.api.RemoveMember(ctx, id); err != nil {
		return common.NewUserError("Unable to remove the member. Please try again.", err)
	}

	delete(s.members, id)
	return nil
}

// Transfers fetches the current user's transfer history. Meta is
// discarded; callers needing pagination go through the API directly.
// Failures surface via Err like Refresh.
func (s *AccountStore) Transfers(ctx context.Context) []model.AccountTransfer {
	userID := s.session.CurrentUserID()
	if userID == "" {
		s.loadErr = "Please sign in to view your transfers."
		common.LogDebug("transfer fetch skipped", common.Fields{"reason": common.ErrNoActiveUser.Error()})
		return nil
	}

	transfers, _, err := s.api.ListTransfers(ctx, userID)
	if err != nil {
		s.loadErr = "Unable to load your transfers. Please try again."
		common.LogError(err, "failed to fetch transfers", common.Fields{"user_id": userID})
		return nil
	}

	s.loadErr = ""
	return transfers
}

// CreateTransfer creates a transfer and then refreshes the whole
// account collection. Both balances change server-side; guessing the
// amounts locally would drift.
func (s *AccountStore) CreateTransfer(ctx context.Context, input CreateTransferInput) (*model.AccountTransfer, error) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		return nil, common.NewUserError("Please sign in to transfer between accounts.", common.ErrNoActiveUser)
	}

	transfer, err := s.api.CreateTransfer(ctx, api.CreateTransferRequest{
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		UserID:        userID,
		Amount:        input.Amount,
		Note:          input.Note,
	})
	if err != nil {
		return nil, common.NewUserError("Unable to complete the transfer. Please try again.", err)
	}

	s.Refresh(ctx)
	return transfer, nil
}

func accountID(a model.Account) string {
	return a.ID
}
