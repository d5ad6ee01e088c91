package tui

import (
	"fmt"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/notify"
)

func testPanel(n int) *notify.Panel {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notifications := make([]model.Notification, 0, n)
	for i := 0; i < n; i++ {
		notifications = append(notifications, model.Notification{
			ID:        fmt.Sprintf("n%d", i+1),
			Title:     fmt.Sprintf("Notification %d", i+1),
			Type:      model.NotificationInfo,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return notify.NewPanel(notifications, notify.Hooks{})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNotifications_StartsOpen(t *testing.T) {
	panel := testPanel(3)
	m := NewNotifications(panel)

	assert.True(t, panel.IsOpen())
	assert.Contains(t, m.View(), "Notifications")
	assert.Contains(t, m.View(), "filter: all")
}

func TestNotifications_EscCloses(t *testing.T) {
	panel := testPanel(3)
	m := NewNotifications(panel)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, panel.IsOpen())
	assert.Contains(t, m.View(), "Notifications closed")
	assert.Contains(t, m.View(), "3 unread")
}

func TestNotifications_ToggleReopens(t *testing.T) {
	panel := testPanel(1)
	m := NewNotifications(panel)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, panel.IsOpen())

	m, _ = m.Update(keyRune('n'))

	assert.True(t, panel.IsOpen())
}

func TestNotifications_TabCyclesFilter(t *testing.T) {
	panel := testPanel(3)
	m := NewNotifications(panel)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, notify.FilterUnread, panel.Filter())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, notify.FilterTransaction, panel.Filter())
}

func TestNotifications_EnterMarksHighlightedRead(t *testing.T) {
	panel := testPanel(2)
	m := NewNotifications(panel)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, panel.UnreadCount())
}

func TestNotifications_DeleteRemovesHighlighted(t *testing.T) {
	panel := testPanel(2)
	m := NewNotifications(panel)

	m, _ = m.Update(keyRune('d'))

	assert.Len(t, panel.Notifications(), 1)
}

func TestNotifications_MarkAll(t *testing.T) {
	panel := testPanel(7)
	m := NewNotifications(panel)

	m, _ = m.Update(keyRune('a'))

	assert.Zero(t, panel.UnreadCount())
	assert.NotContains(t, m.View(), "[a] Mark all")
}

func TestNotifications_PageKeys(t *testing.T) {
	panel := testPanel(12)
	m := NewNotifications(panel)

	m, _ = m.Update(keyRune('l'))
	assert.Equal(t, 2, panel.Page())

	m, _ = m.Update(keyRune('h'))
	assert.Equal(t, 1, panel.Page())

	// Clamped at the first page.
	m, _ = m.Update(keyRune('h'))
	assert.Equal(t, 1, panel.Page())
}

func TestNotifications_ClosedPanelIgnoresListKeys(t *testing.T) {
	panel := testPanel(4)
	m := NewNotifications(panel)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(keyRune('d'))

	assert.Len(t, panel.Notifications(), 4)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "long st...", truncate("long string here", 10))

	// Rune-counted, so multi-byte titles stay valid UTF-8.
	thai := "แจ้งเตือนรายการใหม่"
	out := truncate(thai, 10)
	assert.Equal(t, "แจ้งเตื...", out)
	assert.True(t, utf8.ValidString(out))
}
