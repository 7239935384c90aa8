package ui

import (
	"context"

	"contactup/internal/models"
	"contactup/internal/submission"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Busy reports whether any request is outstanding.
func (m *Model) Busy() bool {
	return m.Loading > 0 || m.State.InFlight()
}

func (m *Model) spin(wasBusy bool) tea.Cmd {
	if wasBusy {
		return nil
	}
	return m.Spinner.Tick
}

// LoadContacts fetches the full list. The table is replaced only on success.
func (m *Model) LoadContacts() tea.Cmd {
	if m.Service == nil {
		return nil
	}
	wasBusy := m.Busy()
	m.Loading++

	svc, ctx := m.Service, m.Ctx
	fetch := func() tea.Msg {
		contacts, err := svc.ListContacts(ctx)
		return ContactsLoadedMsg{Contacts: contacts, Err: err}
	}
	return tea.Batch(fetch, m.spin(wasBusy))
}

// Submit validates the form and, if it passes, starts the existence check.
func (m *Model) Submit() tea.Cmd {
	m.State = submission.StateValidating

	contact, err := submission.Validate(m.NameInput.Value(), m.CountryCode(), m.PhoneInput.Value())
	if err != nil {
		m.State = submission.StateDoneError
		var focus tea.Cmd
		if submission.IsPhoneFormat(err) {
			focus = m.focusField(submission.FieldPhone)
		}
		return tea.Batch(m.Alerts.Show(err.Error(), models.AlertError), focus)
	}

	if m.Service == nil {
		m.State = submission.StateDoneError
		return m.Alerts.Show(submission.MsgGenericFailure, models.AlertError)
	}

	wasBusy := m.Busy()
	m.State = submission.StateCheckingExistence
	return tea.Batch(checkExistence(m.Ctx, m.Service, contact), m.spin(wasBusy))
}

func checkExistence(ctx context.Context, svc ContactService, c models.Contact) tea.Cmd {
	return func() tea.Msg {
		exists, err := svc.CheckContact(ctx, c.Phone, c.CountryCode)
		return ExistenceCheckedMsg{Contact: c, Exists: exists, Err: err}
	}
}

func upload(ctx context.Context, svc ContactService, c models.Contact) tea.Cmd {
	return func() tea.Msg {
		return UploadedMsg{Contact: c, Err: svc.Upload(ctx, c)}
	}
}

func (m *Model) handleContactsLoaded(msg ContactsLoadedMsg) tea.Cmd {
	if m.Loading > 0 {
		m.Loading--
	}
	if msg.Err != nil {
		m.Logger.Error("load contacts", zap.Error(msg.Err))
		return m.Alerts.Show(LoadFailedText, models.AlertError)
	}
	m.List.SetContacts(msg.Contacts)
	m.Logger.Debug("contacts loaded", zap.Int("count", len(msg.Contacts)))
	return nil
}

func (m *Model) handleExistenceChecked(msg ExistenceCheckedMsg) tea.Cmd {
	switch {
	case msg.Err != nil:
		m.Logger.Error("check contact", zap.Error(msg.Err))
		m.State = submission.StateDoneError
		return m.Alerts.Show(submission.MsgGenericFailure, models.AlertError)
	case msg.Exists:
		m.State = submission.StateDoneError
		return m.Alerts.Show(submission.MsgDuplicate, models.AlertError)
	}

	m.State = submission.StateSubmitting
	return upload(m.Ctx, m.Service, msg.Contact)
}

func (m *Model) handleUploaded(msg UploadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.Logger.Error("upload contact", zap.Error(msg.Err))
		m.State = submission.StateDoneError
		return m.Alerts.Show(submission.UploadFailureMessage(msg.Err), models.AlertError)
	}

	m.Logger.Info("contact added",
		zap.String("name", msg.Contact.Name),
		zap.String("phone", msg.Contact.FullPhone()))
	m.State = submission.StateDoneSuccess
	return tea.Batch(
		m.Alerts.Show(submission.MsgAdded, models.AlertSuccess),
		m.resetForm(),
		m.LoadContacts(),
	)
}
