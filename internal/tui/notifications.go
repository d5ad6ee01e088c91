// Package tui renders the notification panel as a terminal component.
// All filtering, pagination and read-state logic lives in the notify
// package; this model only translates key presses into panel
// transitions and draws the result.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/notify"
)

// filterCycle is the order the filter key walks through.
var filterCycle = []notify.Filter{
	notify.FilterAll,
	notify.FilterUnread,
	notify.FilterTransaction,
	notify.FilterBill,
	notify.FilterGoal,
}

// NotificationsModel manages the notification panel view.
type NotificationsModel struct {
	panel  *notify.Panel
	table  table.Model
	width  int
	height int
}

// NewNotifications creates the panel component. The panel starts open;
// esc closes it and the toggle key reopens it.
func NewNotifications(panel *notify.Panel) NotificationsModel {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Date", Width: 16},
		{Title: "Title", Width: 40},
		{Title: "Category", Width: 12},
		{Title: "Type", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(notify.PageSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#14B8A6")).
		Bold(true)
	t.SetStyles(s)

	panel.Open()

	m := NotificationsModel{
		panel:  panel,
		table:  t,
		width:  80,
		height: 24,
	}
	m.syncRows()

	return m
}

// Init implements tea.Model.
func (m NotificationsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m NotificationsModel) Update(msg tea.Msg) (NotificationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m NotificationsModel) handleKey(msg tea.KeyMsg) (NotificationsModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.panel.Close()
		return m, nil

	case "n":
		m.panel.Toggle()
		m.syncRows()
		return m, nil
	}

	if !m.panel.IsOpen() {
		return m, nil
	}

	switch msg.String() {
	case "tab", "f":
		m.panel.SetFilter(nextFilter(m.panel.Filter()))
		m.syncRows()

	case "left", "h":
		m.panel.PrevPage()
		m.syncRows()

	case "right", "l":
		m.panel.NextPage()
		m.syncRows()

	case "enter":
		if n, ok := m.highlighted(); ok {
			m.panel.Select(n.ID)
			m.syncRows()
		}

	case "d", "x":
		if n, ok := m.highlighted(); ok {
			m.panel.Delete(n.ID)
			m.syncRows()
		}

	case "a":
		m.panel.MarkAllRead()
		m.syncRows()

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// highlighted resolves the table cursor to a notification on the
// current page.
func (m NotificationsModel) highlighted() (model.Notification, bool) {
	visible := m.panel.Visible()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(visible) {
		return model.Notification{}, false
	}
	return visible[cursor], true
}

// syncRows rebuilds the table rows from the panel's visible page and
// clamps the cursor to the new bounds.
func (m *NotificationsModel) syncRows() {
	visible := m.panel.Visible()
	rows := make([]table.Row, 0, len(visible))

	for _, n := range visible {
		marker := "●"
		if n.IsRead {
			marker = " "
		}
		rows = append(rows, table.Row{
			marker,
			n.CreatedAt.Format("2006-01-02 15:04"),
			truncate(n.Title, 40),
			string(notify.Categorize(n)),
			string(n.Type),
		})
	}

	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// View renders the panel.
func (m NotificationsModel) View() string {
	if !m.panel.IsOpen() {
		hint := fmt.Sprintf("Notifications closed — %d unread  [n] open  [q] quit", m.panel.UnreadCount())
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(hint)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
	)
}

func (m NotificationsModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6")).Render("Notifications")

	status := fmt.Sprintf("filter: %s | %d unread", m.panel.Filter(), m.panel.UnreadCount())
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m NotificationsModel) renderFooter() string {
	page := fmt.Sprintf("page %d/%d", m.panel.Page(), m.panel.TotalPages())

	hints := []string{
		"[↑↓] Navigate",
		"[Enter] Mark read",
		"[a] Mark all",
		"[d] Delete",
		"[Tab] Filter",
		"[←→] Page",
		"[Esc] Close",
	}
	if m.panel.UnreadCount() == 0 {
		hints = slicesWithout(hints, "[a] Mark all")
	}

	line := page + "  " + strings.Join(hints, "  ")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(line)
}

func nextFilter(current notify.Filter) notify.Filter {
	for i, f := range filterCycle {
		if f == current {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return notify.FilterAll
}

func slicesWithout(hints []string, drop string) []string {
	out := make([]string, 0, len(hints))
	for _, h := range hints {
		if h != drop {
			out = append(out, h)
		}
	}
	return out
}

// truncate shortens s to at most maxLen runes. Slicing on runes keeps
// multi-byte titles intact.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// Run drives the panel as a standalone program.
func Run(panel *notify.Panel) error {
	p := tea.NewProgram(wrapper{NewNotifications(panel)})
	_, err := p.Run()
	return err
}

// wrapper adapts NotificationsModel's concrete Update signature to
// tea.Model.
type wrapper struct {
	inner NotificationsModel
}

func (w wrapper) Init() tea.Cmd {
	return w.inner.Init()
}

func (w wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	inner, cmd := w.inner.Update(msg)
	w.inner = inner
	return w, cmd
}

func (w wrapper) View() string {
	return w.inner.View()
}
