package ui

import (
	"contactup/internal/alert"
	"contactup/internal/styles"
	"contactup/internal/submission"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Busy() {
			return m, nil
		}
		var spCmd tea.Cmd
		m.Spinner, spCmd = m.Spinner.Update(msg)
		return m, spCmd

	case alert.ExpireMsg, alert.RemoveMsg:
		return m, m.Alerts.Update(msg)

	case ContactsLoadedMsg:
		return m, m.handleContactsLoaded(msg)

	case ExistenceCheckedMsg:
		return m, m.handleExistenceChecked(msg)

	case UploadedMsg:
		return m, m.handleUploaded(msg)

	case tea.WindowSizeMsg:
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height
		m.updateLayout()
		m.Renderer = nil
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Quit) {
		return tea.Quit
	}

	if m.ShortcutsOpen {
		switch msg.String() {
		case "esc", "enter", "ctrl+s", "q":
			m.ShortcutsOpen = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.Dismiss):
		return m.Alerts.Dismiss()

	case key.Matches(msg, m.Keys.ToggleTheme):
		m.Theme.Toggle()
		m.ApplyTheme()
		return nil

	case key.Matches(msg, m.Keys.Reload):
		return m.LoadContacts()

	case key.Matches(msg, m.Keys.Shortcuts):
		m.ShortcutsOpen = true
		return nil

	case key.Matches(msg, m.Keys.Submit):
		return m.Submit()

	case key.Matches(msg, m.Keys.Next):
		return m.focusField((m.Focus + 1) % 3)

	case key.Matches(msg, m.Keys.Prev):
		return m.focusField((m.Focus + 2) % 3)

	case key.Matches(msg, m.Keys.Scroll):
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return cmd
	}

	if m.Focus == submission.FieldCountryCode {
		switch {
		case key.Matches(msg, m.Keys.CountryNext):
			m.cycleCountry(1)
		case key.Matches(msg, m.Keys.CountryPrev):
			m.cycleCountry(-1)
		}
		return nil
	}

	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case submission.FieldName:
		m.NameInput, cmd = m.NameInput.Update(msg)
	case submission.FieldPhone:
		m.PhoneInput, cmd = m.PhoneInput.Update(msg)
		if v := m.PhoneInput.Value(); submission.DigitsOnly(v) != v {
			m.PhoneInput.SetValue(submission.DigitsOnly(v))
		}
	}
	return cmd
}

func (m *Model) focusField(f submission.Field) tea.Cmd {
	m.Focus = f
	m.NameInput.Blur()
	m.PhoneInput.Blur()
	switch f {
	case submission.FieldName:
		return m.NameInput.Focus()
	case submission.FieldPhone:
		return m.PhoneInput.Focus()
	}
	return nil
}

func (m *Model) cycleCountry(step int) {
	n := len(m.CountryCodes)
	if n == 0 {
		return
	}
	// Slot n stands for "nothing selected" so the cycle passes through it.
	idx := m.CountryIdx
	if idx < 0 {
		idx = n
	}
	idx = (idx + step + n + 1) % (n + 1)
	if idx == n {
		idx = -1
	}
	m.CountryIdx = idx
}

// CountryCode is the selected code, or "" when nothing is selected.
func (m *Model) CountryCode() string {
	if m.CountryIdx < 0 || m.CountryIdx >= len(m.CountryCodes) {
		return ""
	}
	return m.CountryCodes[m.CountryIdx]
}

// SelectCountry selects code if it is part of the configured set.
func (m *Model) SelectCountry(code string) bool {
	for i, cc := range m.CountryCodes {
		if cc == code {
			m.CountryIdx = i
			return true
		}
	}
	return false
}

func (m *Model) resetForm() tea.Cmd {
	m.NameInput.Reset()
	m.PhoneInput.Reset()
	m.CountryIdx = -1
	return m.focusField(submission.FieldName)
}

// ApplyTheme restyles everything from the controller's current theme.
func (m *Model) ApplyTheme() {
	t := m.Theme.Current()
	styles.Apply(t)
	m.Styles = styles.For(t)
	m.List.SetStyles(m.Styles)
	m.Spinner.Style = m.Styles.Status
	m.NameInput.PlaceholderStyle = m.Styles.Hint
	m.PhoneInput.PlaceholderStyle = m.Styles.Hint
	m.NameInput.TextStyle = m.Styles.Selector.UnsetBold()
	m.PhoneInput.TextStyle = m.Styles.Selector.UnsetBold()
	m.Help.Styles.ShortKey = m.Styles.Selector
	m.Help.Styles.ShortDesc = m.Styles.Hint
	m.Help.Styles.ShortSeparator = m.Styles.Hint
	m.Renderer = nil
}

func (m *Model) updateLayout() {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return
	}

	width := m.formWidth()
	styles.ContentWidth = width
	inputWidth := width - 14 - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.NameInput.Width = inputWidth
	m.PhoneInput.Width = inputWidth
	m.Help.Width = width

	listHeight := m.WindowHeight - ListChrome
	if listHeight < MinListHeight {
		listHeight = MinListHeight
	}
	m.List.SetSize(width, listHeight)
}

func (m *Model) formWidth() int {
	width := m.WindowWidth - 4
	if width > MaxFormWidth {
		width = MaxFormWidth
	}
	if width < MinFormWidth {
		width = MinFormWidth
	}
	return width
}

func (m *Model) shortcutsRenderer() *glamour.TermRenderer {
	if m.Renderer != nil {
		return m.Renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(styles.GlamourStyle(m.Theme.Current())),
		glamour.WithWordWrap(ModalWidth-6),
	)
	if err != nil {
		m.Logger.Debug("help renderer unavailable")
		return nil
	}
	m.Renderer = r
	return r
}
