package api

import (
	"bytes"
	"encoding/json"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/normalize"
)

// listBody decodes the two list shapes the API uses interchangeably: a
// bare JSON array or an {items, meta} envelope. The decoded form feeds
// straight into normalize.List.
type listBody[T any] struct {
	Items []T
	Meta  *metaWire
}

func (l *listBody[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		return json.Unmarshal(data, &l.Items)
	}

	var env struct {
		Items []T       `json:"items"`
		Meta  *metaWire `json:"meta"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	l.Items = env.Items
	l.Meta = env.Meta
	return nil
}

func (l *listBody[T]) payload() *normalize.ListPayload[T] {
	if l == nil {
		return nil
	}
	return &normalize.ListPayload[T]{
		Items: l.Items,
		Meta:  l.Meta.toModel(),
	}
}

type metaWire struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func (m *metaWire) toModel() *model.Meta {
	if m == nil {
		return nil
	}
	return &model.Meta{
		Page:       m.Page,
		Limit:      m.Limit,
		Offset:     m.Offset,
		Total:      m.Total,
		TotalPages: m.TotalPages,
	}
}

// permissionsWire decodes a member's permission set from either wire
// form: an explicit tag list or a {view, deposit, withdraw} flags
// object.
type permissionsWire struct {
	tags  []model.Permission
	flags *normalize.PermissionFlags
}

func (p *permissionsWire) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		return json.Unmarshal(data, &p.tags)
	}

	var flags struct {
		View     bool `json:"view"`
		Deposit  bool `json:"deposit"`
		Withdraw bool `json:"withdraw"`
	}
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}

	p.flags = &normalize.PermissionFlags{
		View:     flags.View,
		Deposit:  flags.Deposit,
		Withdraw: flags.Withdraw,
	}
	return nil
}

func (p permissionsWire) toModel() []model.Permission {
	if p.flags != nil {
		return normalize.PermissionsFromFlags(*p.flags)
	}
	return normalize.Permissions(p.tags)
}

// permissionFlagsOut is the outbound wire form for permission sets.
// The backend expects the flags object; view is always true since it is
// implicit for every member.
type permissionFlagsOut struct {
	View     bool `json:"view"`
	Deposit  bool `json:"deposit"`
	Withdraw bool `json:"withdraw"`
}

func flagsFromTags(tags []model.Permission) permissionFlagsOut {
	out := permissionFlagsOut{View: true}
	for _, tag := range normalize.Permissions(tags) {
		switch tag {
		case model.PermissionDeposit:
			out.Deposit = true
		case model.PermissionWithdraw:
			out.Withdraw = true
		}
	}
	return out
}
