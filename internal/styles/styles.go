package styles

import (
	"contactup/internal/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var ContentWidth = 64

// Set is every style the UI renders with. It is rebuilt whenever the theme changes.
type Set struct {
	Theme   models.Theme
	Palette Palette

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style
	Selector    lipgloss.Style
	Hint        lipgloss.Style
	Count       lipgloss.Style
	Status      lipgloss.Style
	Footer      lipgloss.Style
	Placeholder lipgloss.Style
	Panel       lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style

	AlertSuccess lipgloss.Style
	AlertError   lipgloss.Style
	AlertLeaving lipgloss.Style

	Table table.Styles
}

// For builds the style set for a theme.
func For(t models.Theme) Set {
	p := PaletteFor(t)

	s := Set{Theme: t, Palette: p}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Padding(0, 1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true).
		Padding(0, 1)

	s.Label = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Width(14)

	s.LabelActive = s.Label.
		Foreground(p.Primary).
		Bold(true)

	s.Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.InputActive = s.Input.
		BorderForeground(p.Primary)

	s.Selector = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	s.Hint = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	s.Count = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1).
		MarginLeft(1)

	s.Status = lipgloss.NewStyle().
		Foreground(p.Secondary).
		PaddingLeft(1)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		PaddingTop(1)

	s.Placeholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)

	s.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	alertBase := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1)

	s.AlertSuccess = alertBase.Background(p.Success)
	s.AlertError = alertBase.Background(p.Error)
	s.AlertLeaving = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Faint(true).
		Padding(0, 1)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Foreground(p.Primary).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(p.TextPrimary)
	ts.Selected = ts.Selected.
		Foreground(p.TextPrimary).
		Background(p.BgElevated).
		Bold(false)
	s.Table = ts

	return s
}

// Alert returns the style for an alert kind.
func (s Set) Alert(kind models.AlertKind) lipgloss.Style {
	if kind == models.AlertSuccess {
		return s.AlertSuccess
	}
	return s.AlertError
}
