package ui

import (
	"context"

	"contactup/internal/alert"
	"contactup/internal/contactlist"
	"contactup/internal/models"
	"contactup/internal/styles"
	"contactup/internal/submission"
	"contactup/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

const (
	MaxFormWidth  = 72
	MinFormWidth  = 40
	ModalWidth    = 60
	ListChrome    = 20 // Rows taken by everything above and below the table
	MinListHeight = 3

	NoCountryLabel = "Select…"
	LoadFailedText = "Failed to load contacts. Press Ctrl+R to reload."
)

const ShortcutsMarkdown = `# Keyboard shortcuts

| Key | Action |
|-----|--------|
| Tab / ↓ | Next field |
| Shift+Tab / ↑ | Previous field |
| ← / → | Change country code |
| Enter | Submit contact |
| Ctrl+R | Reload contacts |
| Ctrl+T | Toggle light/dark theme |
| Esc / Ctrl+X | Close alert |
| PgUp / PgDn | Scroll contacts |
| Ctrl+S | This help |
| Ctrl+C | Quit |

The phone field accepts digits only and needs exactly **9** of them, without the country code.
`

// ContactService is the backend the client talks to.
type ContactService interface {
	CheckContact(ctx context.Context, phone, countryCode string) (bool, error)
	Upload(ctx context.Context, contact models.Contact) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

type (
	ContactsLoadedMsg struct {
		Contacts []models.Contact
		Err      error
	}

	ExistenceCheckedMsg struct {
		Contact models.Contact
		Exists  bool
		Err     error
	}

	UploadedMsg struct {
		Contact models.Contact
		Err     error
	}
)

type Model struct {
	NameInput    textinput.Model
	PhoneInput   textinput.Model
	CountryCodes []string
	CountryIdx   int // -1 while nothing is selected
	Focus        submission.Field

	State   submission.State
	Loading int // contact list fetches outstanding

	List     contactlist.Model
	Alerts   *alert.Notifier
	Theme    *theme.Controller
	Styles   styles.Set
	Spinner  spinner.Model
	Keys     KeyMap
	Help     help.Model
	Renderer *glamour.TermRenderer

	Service   ContactService
	Ctx       context.Context
	Logger    *zap.Logger
	ServerURL string

	ShortcutsOpen bool
	WindowWidth   int
	WindowHeight  int
}
