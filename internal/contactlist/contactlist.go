// Package contactlist renders the numbered contact table and its count.
package contactlist

import (
	"fmt"
	"strconv"

	"contactup/internal/models"
	"contactup/internal/styles"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const EmptyMessage = "No contacts yet. Add your first contact!"

const (
	indexWidth = 4
	phoneWidth = 18
	minName    = 12
)

type Model struct {
	table    table.Model
	contacts []models.Contact
	width    int
	styles   styles.Set
}

func New(s styles.Set) Model {
	m := Model{
		table: table.New(
			table.WithColumns(columns(styles.ContentWidth)),
			table.WithHeight(8),
			table.WithFocused(true),
		),
		width: styles.ContentWidth,
	}
	m.SetStyles(s)
	return m
}

func columns(width int) []table.Column {
	// Each cell carries one column of padding on both sides.
	name := width - indexWidth - phoneWidth - 6
	if name < minName {
		name = minName
	}
	return []table.Column{
		{Title: "#", Width: indexWidth},
		{Title: "Name", Width: name},
		{Title: "Phone", Width: phoneWidth},
	}
}

// SetContacts replaces the whole table body. Rows are numbered 1..N in the given order.
func (m *Model) SetContacts(contacts []models.Contact) {
	m.contacts = append(m.contacts[:0:0], contacts...)
	m.table.SetRows(Rows(m.contacts))
	m.table.GotoTop()
}

// Rows converts contacts into numbered table rows.
func Rows(contacts []models.Contact) []table.Row {
	rows := make([]table.Row, 0, len(contacts))
	for i, c := range contacts {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), c.Name, c.FullPhone()})
	}
	return rows
}

func (m Model) Rows() []table.Row { return m.table.Rows() }

func (m Model) Count() int { return len(m.contacts) }

func (m Model) Contacts() []models.Contact { return m.contacts }

// Placeholder reports the empty-state row, shown in place of data rows.
func (m Model) Placeholder() (string, bool) {
	if len(m.contacts) == 0 {
		return EmptyMessage, true
	}
	return "", false
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
		m.table.SetColumns(columns(width))
		m.table.SetWidth(width)
	}
	if height > 0 {
		m.table.SetHeight(height)
	}
}

func (m *Model) SetStyles(s styles.Set) {
	m.styles = s
	m.table.SetStyles(s.Table)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Header is the section title with the count badge.
func (m Model) Header() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("Contacts"),
		m.styles.Count.Render(fmt.Sprint(m.Count())),
	)
}

func (m Model) View() string {
	if msg, ok := m.Placeholder(); ok {
		var header []string
		for _, col := range m.table.Columns() {
			header = append(header, m.styles.Table.Header.Render(
				lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true).Render(col.Title)))
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, header...),
			m.styles.Placeholder.Width(m.width).Render(msg),
		)
	}
	return m.table.View()
}
