// Package notify implements the client-local notification panel state:
// open/closed visibility, per-notification read state, category
// filtering and fixed-size pagination. Server side effects are injected
// as hooks so the state machine itself stays synchronous and testable.
package notify

import (
	"sort"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// PageSize is the fixed number of notifications per page.
const PageSize = 5

// Filter restricts the visible set before pagination is applied.
type Filter string

// Selectable filter dimensions.
const (
	FilterAll         Filter = "all"
	FilterUnread      Filter = "unread"
	FilterTransaction Filter = "transaction"
	FilterBill        Filter = "bill"
	FilterGoal        Filter = "goal"
)

// Hooks are the server-bound side effects of panel transitions. Nil
// hooks are skipped; the local transition happens either way.
type Hooks struct {
	MarkRead    func(id string)
	MarkAllRead func()
	Delete      func(id string)
}

// Panel is the notification panel state machine. The panel itself is
// binary open/closed; independently each notification is unread or
// read.
type Panel struct {
	notifications []model.Notification
	hooks         Hooks
	filter        Filter
	page          int
	open          bool
	now           func() time.Time
}

// NewPanel creates a closed panel over the given collection, filter
// "all", first page.
func NewPanel(notifications []model.Notification, hooks Hooks) *Panel {
	p := &Panel{
		hooks:  hooks,
		filter: FilterAll,
		page:   1,
		now:    time.Now,
	}
	p.SetNotifications(notifications)
	return p
}

// SetNotifications replaces the collection and re-clamps the current
// page to the new bounds.
func (p *Panel) SetNotifications(notifications []model.Notification) {
	p.notifications = make([]model.Notification, len(notifications))
	copy(p.notifications, notifications)
	p.clampPage()
}

// Notifications returns the full collection regardless of filter.
func (p *Panel) Notifications() []model.Notification {
	return p.notifications
}

// IsOpen reports whether the panel is open.
func (p *Panel) IsOpen() bool {
	return p.open
}

// Open opens the panel.
func (p *Panel) Open() {
	p.open = true
}

// Close closes the panel. Triggered by the explicit close action or by
// an interaction outside the panel's bounds.
func (p *Panel) Close() {
	p.open = false
}

// Toggle flips the panel between open and closed.
func (p *Panel) Toggle() {
	p.open = !p.open
}

// Filter returns the active filter dimension.
func (p *Panel) Filter() Filter {
	return p.filter
}

// SetFilter switches the filter dimension. Changing the filter resets
// pagination to the first page; re-selecting the active filter does
// nothing.
func (p *Panel) SetFilter(f Filter) {
	if f == p.filter {
		return
	}
	p.filter = f
	p.page = 1
}

// Filtered returns the visible set before pagination: filtered, then
// sorted by CreatedAt descending. Ties keep their original relative
// order.
func (p *Panel) Filtered() []model.Notification {
	var out []model.Notification
	for _, n := range p.notifications {
		if p.matches(n) {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (p *Panel) matches(n model.Notification) bool {
	switch p.filter {
	case FilterUnread:
		return !n.IsRead
	case FilterTransaction:
		return Categorize(n) == model.CategoryTransaction
	case FilterBill:
		return Categorize(n) == model.CategoryBill
	case FilterGoal:
		return Categorize(n) == model.CategoryGoal
	default:
		return true
	}
}

// Visible returns the current page of the filtered, sorted set.
func (p *Panel) Visible() []model.Notification {
	filtered := p.Filtered()

	start := (p.page - 1) * PageSize
	if start >= len(filtered) {
		return []model.Notification{}
	}

	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Page returns the current page index, always within [1, TotalPages].
func (p *Panel) Page() int {
	return p.page
}

// TotalPages returns the page count of the filtered set, at least 1.
func (p *Panel) TotalPages() int {
	count := len(p.Filtered())
	if count == 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// SetPage moves to the given page, clamped to [1, TotalPages].
func (p *Panel) SetPage(page int) {
	p.page = page
	p.clampPage()
}

// NextPage advances one page, clamped.
func (p *Panel) NextPage() {
	p.SetPage(p.page + 1)
}

// PrevPage goes back one page, clamped.
func (p *Panel) PrevPage() {
	p.SetPage(p.page - 1)
}

func (p *Panel) clampPage() {
	if p.page < 1 {
		p.page = 1
	}
	if total := p.TotalPages(); p.page > total {
		p.page = total
	}
}

// Select marks a notification as read. Idempotent: selecting an
// already-read notification changes nothing and never re-invokes the
// mark-read side effect.
func (p *Panel) Select(id string) {
	for i, n := range p.notifications {
		if n.ID != id {
			continue
		}
		if n.IsRead {
			return
		}

		readAt := p.now()
		p.notifications[i].IsRead = true
		p.notifications[i].ReadAt = &readAt

		if p.hooks.MarkRead != nil {
			p.hooks.MarkRead(id)
		}
		// Under the unread filter the visible set just shrank.
		p.clampPage()
		return
	}
}

// MarkAllRead transitions every unread notification to read in one
// batch. Tolerates zero unread items: the side effect still fires only
// when something actually transitioned.
func (p *Panel) MarkAllRead() {
	transitioned := false
	readAt := p.now()

	for i, n := range p.notifications {
		if n.IsRead {
			continue
		}
		p.notifications[i].IsRead = true
		p.notifications[i].ReadAt = &readAt
		transitioned = true
	}

	if transitioned && p.hooks.MarkAllRead != nil {
		p.hooks.MarkAllRead()
	}
	p.clampPage()
}

// Delete permanently removes a notification from the collection. No
// undo. The page is re-clamped since the filtered set shrank.
func (p *Panel) Delete(id string) {
	for i, n := range p.notifications {
		if n.ID == id {
			p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)
			if p.hooks.Delete != nil {
				p.hooks.Delete(id)
			}
			p.clampPage()
			return
		}
	}
}

// UnreadCount returns the number of unread notifications across the
// whole collection.
func (p *Panel) UnreadCount() int {
	count := 0
	for _, n := range p.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
