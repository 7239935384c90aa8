package ui

import (
	"fmt"
	"strings"
	"time"

	"contactup/internal/models"
	"contactup/internal/submission"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderHeader() string {
	badge := "☀ light"
	if m.Theme.Current() == models.ThemeDark {
		badge = "☾ dark"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.Styles.Title.Render("CONTACTUP"),
		m.Styles.Subtitle.Render("add a contact"),
		m.Styles.Hint.Render(badge),
	)
}

func (m *Model) renderField(f submission.Field, label, body string) string {
	labelStyle, boxStyle := m.Styles.Label, m.Styles.Input
	if m.Focus == f {
		labelStyle, boxStyle = m.Styles.LabelActive, m.Styles.InputActive
	}
	box := boxStyle.Width(m.formWidth() - labelStyle.GetWidth() - 4).Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(label), box)
}

func (m *Model) renderCountrySelector() string {
	code := m.CountryCode()
	if code == "" {
		return m.Styles.Hint.Render("‹ " + NoCountryLabel + " ›")
	}
	return m.Styles.Selector.Render("‹ " + code + " ›")
}

// RenderForm draws the three input rows.
func (m *Model) RenderForm() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderField(submission.FieldName, "Name", m.NameInput.View()),
		m.renderField(submission.FieldCountryCode, "Country code", m.renderCountrySelector()),
		m.renderField(submission.FieldPhone, "Phone", m.PhoneInput.View()),
	)
}

func (m *Model) statusText() string {
	switch m.State {
	case submission.StateCheckingExistence:
		return "Checking contact…"
	case submission.StateSubmitting:
		return "Adding contact…"
	}
	if m.Loading > 0 {
		return "Loading contacts…"
	}
	return ""
}

// RenderStatus is the spinner line. It is blank while nothing is in flight.
func (m *Model) RenderStatus() string {
	if !m.Busy() {
		return ""
	}
	return m.Styles.Status.Render(m.Spinner.View() + " " + m.statusText())
}

func (m *Model) RenderFooter() string {
	meta := fmt.Sprintf("© %d ContactUp · %s", time.Now().Year(), m.ServerURL)
	return m.Styles.Footer.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.Help.View(m.Keys),
		meta,
	))
}

func (m *Model) RenderShortcutsModal() string {
	title := m.Styles.ModalTitle.Render("Keyboard Shortcuts")

	body := ShortcutsMarkdown
	if r := m.shortcutsRenderer(); r != nil {
		if out, err := r.Render(ShortcutsMarkdown); err == nil {
			body = strings.TrimSpace(out)
		}
	}

	hint := m.Styles.Hint.PaddingTop(1).Render("Esc/Enter: close")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, hint)
}

func (m *Model) View() string {
	width := m.formWidth()

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.Alerts.View(m.Styles, width),
		m.Styles.Panel.Width(width).Render(m.RenderForm()),
		m.RenderStatus(),
		m.List.Header(),
		m.List.View(),
		m.RenderFooter(),
	)

	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return content
	}

	if m.ShortcutsOpen {
		modal := m.Styles.Modal.Width(ModalWidth).Render(m.RenderShortcutsModal())
		return lipgloss.Place(
			m.WindowWidth,
			m.WindowHeight,
			lipgloss.Center,
			lipgloss.Center,
			modal,
		)
	}

	return lipgloss.PlaceHorizontal(m.WindowWidth, lipgloss.Center, content)
}
