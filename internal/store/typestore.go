package store

import (
	"context"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/common"
	"github.com/krapaoshare/krapao-go/internal/model"
)

// TypeStore holds the canonical collection of classification types,
// both system-provided and user-owned.
type TypeStore struct {
	api     api.TypeAPI
	session Session

	types   []model.Type
	meta    *model.Meta
	loadErr string
}

// CreateTypeInput is a partial client draft for a new type.
type CreateTypeInput struct {
	Name  string
	Color string
	Icon  string
	Kind  model.TypeKind
}

// NewTypeStore creates a type store backed by the given API client and
// session.
func NewTypeStore(client api.TypeAPI, session Session) *TypeStore {
	return &TypeStore{api: client, session: session}
}

// Types returns the current collection.
func (s *TypeStore) Types() []model.Type {
	return s.types
}

// Meta returns the pagination metadata of the last refresh, nil when
// absent.
func (s *TypeStore) Meta() *model.Meta {
	return s.meta
}

// Err returns the user-facing message from the last failed refresh, or
// empty.
func (s *TypeStore) Err() string {
	return s.loadErr
}

// Refresh replaces the collection with the current user's types.
func (s *TypeStore) Refresh(ctx context.Context) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		s.types = nil
		s.meta = nil
		s.loadErr = "Please sign in to view your types."
		common.LogDebug("type refresh skipped", common.Fields{"reason": common.ErrNoActiveUser.Error()})
		return
	}

	types, meta, err := s.api.ListTypesByUser(ctx, userID)
	if err != nil {
		s.loadErr = "Unable to load your types. Please try again."
		common.LogError(err, "failed to refresh types", common.Fields{"user_id": userID})
		return
	}

	s.types = types
	s.meta = meta
	s.loadErr = ""
}

// GetByID fetches a single type; nil on any failure (logged).
func (s *TypeStore) GetByID(ctx context.Context, id string) *model.Type {
	t, err := s.api.GetType(ctx, id)
	if err != nil {
		common.LogError(err, "failed to fetch type", common.Fields{"type_id": id})
		return nil
	}
	return t
}

// Create submits a new type draft and appends the server's entity on
// success.
func (s *TypeStore) Create(ctx context.Context, input CreateTypeInput) (*model.Type, error) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		return nil, common.NewUserError("Please sign in to create a type.", common.ErrNoActiveUser)
	}

	kind := input.Kind
	if kind == "" {
		kind = model.TypeKindCustom
	}

	t, err := s.api.CreateType(ctx, api.CreateTypeRequest{
		UserID: userID,
		Name:   input.Name,
		Color:  input.Color,
		Icon:   input.Icon,
		Kind:   kind,
	})
	if err != nil {
		return nil, common.NewUserError("Unable to create the type. Please try again.", err)
	}

	s.types = append(s.types, *t)
	return t, nil
}

// Update sends a partial patch and replaces the matching entity on
// success.
func (s *TypeStore) Update(ctx context.Context, id string, patch api.TypePatch) (*model.Type, error) {
	t, err := s.api.UpdateType(ctx, id, patch)
	if err != nil {
		return nil, common.NewUserError("Unable to update the type. Please try again.", err)
	}

	s.types = replaceByID(s.types, id, typeID, *t)
	return t, nil
}

// Delete removes the type locally only after server confirmation.
func (s *TypeStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteType(ctx, id); err != nil {
		return common.NewUserError("Unable to delete the type. Please try again.", err)
	}

	s.types = removeByID(s.types, id, typeID)
	return nil
}

func typeID(t model.Type) string {
	return t.ID
}
