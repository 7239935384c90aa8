package ui

import (
	"context"

	"contactup/internal/alert"
	"contactup/internal/contactlist"
	"contactup/internal/styles"
	"contactup/internal/submission"
	"contactup/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options carries everything the model needs from main.
type Options struct {
	Service      ContactService
	Theme        *theme.Controller
	Logger       *zap.Logger
	CountryCodes []string
	ServerURL    string
}

func InitialModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctrl := opts.Theme
	if ctrl == nil {
		ctrl = theme.NewController(nil, nil, logger)
	}

	name := textinput.New()
	name.Placeholder = "Full name"
	name.Prompt = ""
	name.CharLimit = 100
	name.Width = 40

	phone := textinput.New()
	phone.Placeholder = "9 digits, no country code"
	phone.Prompt = ""
	phone.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		NameInput:    name,
		PhoneInput:   phone,
		CountryCodes: append([]string(nil), opts.CountryCodes...),
		CountryIdx:   -1,
		State:        submission.StateIdle,
		Alerts:       alert.New(),
		Theme:        ctrl,
		Spinner:      sp,
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
		Service:      opts.Service,
		Ctx:          context.Background(),
		Logger:       logger,
		ServerURL:    opts.ServerURL,
	}

	applied := ctrl.Init()
	m.List = contactlist.New(styles.For(applied))
	m.ApplyTheme()
	m.focusField(submission.FieldName)

	return m
}

// Init runs at program start: blink the cursor and fetch the list.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.LoadContacts(),
	)
}

func NewProgram(opts Options) *tea.Program {
	m := InitialModel(opts)
	return tea.NewProgram(&m, tea.WithAltScreen())
}
