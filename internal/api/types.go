package api

import (
	"context"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/normalize"
)

type typeWire struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	Kind      string    `json:"kind"`
	IsSystem  bool      `json:"isSystem"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (w typeWire) toModel() model.Type {
	return model.Type{
		ID:        w.ID,
		UserID:    w.UserID,
		Name:      w.Name,
		Color:     w.Color,
		Icon:      w.Icon,
		Kind:      model.TypeKind(w.Kind),
		IsSystem:  w.IsSystem,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// CreateTypeRequest is the server-bound payload for a new type.
type CreateTypeRequest struct {
	UserID string         `json:"userId"`
	Name   string         `json:"name"`
	Color  string         `json:"color,omitempty"`
	Icon   string         `json:"icon,omitempty"`
	Kind   model.TypeKind `json:"kind"`
}

// TypePatch is a partial type update.
type TypePatch struct {
	Name  *string         `json:"name,omitempty"`
	Color *string         `json:"color,omitempty"`
	Icon  *string         `json:"icon,omitempty"`
	Kind  *model.TypeKind `json:"kind,omitempty"`
}

// ListTypesByUser fetches the user's types plus system types. Listing
// uses the paginated envelope like transactions.
func (c *Client) ListTypesByUser(ctx context.Context, userID string) ([]model.Type, *model.Meta, error) {
	var body listBody[typeWire]
	if err := c.do(ctx, "GET", "/types/user/"+userID, nil, nil, &body); err != nil {
		return nil, nil, err
	}

	result := normalize.List(body.payload())
	types := make([]model.Type, 0, len(result.Items))
	for _, w := range result.Items {
		types = append(types, w.toModel())
	}
	return types, result.Meta, nil
}

// GetType fetches a single type by id.
func (c *Client) GetType(ctx context.Context, id string) (*model.Type, error) {
	var w typeWire
	if err := c.do(ctx, "GET", "/types/"+id, nil, nil, &w); err != nil {
		return nil, err
	}
	t := w.toModel()
	return &t, nil
}

// CreateType creates a type and returns the server's entity.
func (c *Client) CreateType(ctx context.Context, req CreateTypeRequest) (*model.Type, error) {
	var w typeWire
	if err := c.do(ctx, "POST", "/types", nil, req, &w); err != nil {
		return nil, err
	}
	t := w.toModel()
	return &t, nil
}

// UpdateType sends a partial patch and returns the updated entity.
func (c *Client) UpdateType(ctx context.Context, id string, patch TypePatch) (*model.Type, error) {
	var w typeWire
	if err := c.do(ctx, "PATCH", "/types/"+id, nil, patch, &w); err != nil {
		return nil, err
	}
	t := w.toModel()
	return &t, nil
}

// DeleteType deletes a type.
func (c *Client) DeleteType(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/types/"+id, nil, nil, nil)
}
