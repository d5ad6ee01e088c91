// Package normalize converts the heterogeneous wire shapes the API
// returns into single canonical in-memory forms. Every function here is
// pure: same input, same output, no side effects, and none of them can
// fail. Absence and malformed shapes degrade to empty collections;
// distinguishing "no data" from "load failure" is the caller's job and
// happens at the transport layer.
package normalize

import "github.com/krapaoshare/krapao-go/internal/model"

// ListPayload is the decoded form of a list response, produced by the
// api package from either a bare JSON array or an {items, meta}
// envelope. A nil payload means the response carried no body at all.
type ListPayload[T any] struct {
	Items []T
	Meta  *model.Meta
}

// ListResult is the canonical shape all list consumers see: Items is
// never nil, Meta is nil unless the server sent an envelope.
type ListResult[T any] struct {
	Items []T
	Meta  *model.Meta
}

// List normalizes a decoded list payload.
//   - nil payload: empty items, no meta
//   - payload with nil items (envelope missing its items field): empty
//     items, meta passed through
//   - anything else: items and meta passed through unchanged
func List[T any](payload *ListPayload[T]) ListResult[T] {
	if payload == nil {
		return ListResult[T]{Items: []T{}}
	}

	items := payload.Items
	if items == nil {
		items = []T{}
	}

	return ListResult[T]{Items: items, Meta: payload.Meta}
}
