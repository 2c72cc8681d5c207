package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/connection"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/vault"
)

type wizardState int

const (
	stateForm wizardState = iota
	stateConnecting
	stateDone
)

// Model is the connection setup wizard. It collects the credential triple
// in a form and runs the same populate/validate/persist flow as the
// connect command, feeding the answers through a scripted asker.
type Model struct {
	state  wizardState
	cfg    *config.Config
	store  vault.Store
	log    *logrus.Logger
	width  int
	height int

	formInputs []string
	formCursor int
	formLabels []string

	message     string
	messageType string // success, error
	connected   bool
}

type connectResult struct {
	ok  bool
	err error
}

func NewModel(cfg *config.Config, store vault.Store, logger *logrus.Logger) Model {
	urlDefault := cfg.Server.URL
	if urlDefault == "" {
		urlDefault = "https://"
	}

	return Model{
		state:      stateForm,
		cfg:        cfg,
		store:      store,
		log:        logger,
		formInputs: []string{urlDefault, cfg.Server.Username, ""},
		formLabels: []string{"Server URL", "Username", "Password"},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case connectResult:
		m.state = stateDone
		switch {
		case msg.err != nil:
			m.connected = false
			m.message = fmt.Sprintf("Connect failed: %v", msg.err)
			m.messageType = "error"
		case !msg.ok:
			m.connected = false
			m.message = "Server rejected the connection; nothing was saved"
			m.messageType = "error"
		default:
			m.connected = true
			m.message = "Connected, credentials saved"
			m.messageType = "success"
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateConnecting {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.state == stateDone {
		switch key.String() {
		case "q", "enter", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.state = stateForm
			m.message = ""
		}
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "shift+tab":
		m.formCursor = (m.formCursor - 1 + len(m.formInputs)) % len(m.formInputs)
	case "down", "tab":
		m.formCursor = (m.formCursor + 1) % len(m.formInputs)
	case "enter":
		if m.formCursor == len(m.formInputs)-1 {
			m.state = stateConnecting
			m.message = ""
			return m, m.connectCmd()
		}
		m.formCursor++
	case "backspace":
		if len(m.formInputs[m.formCursor]) > 0 {
			m.formInputs[m.formCursor] = m.formInputs[m.formCursor][:len(m.formInputs[m.formCursor])-1]
		}
	case "ctrl+u":
		m.formInputs[m.formCursor] = ""
	default:
		if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
			m.formInputs[m.formCursor] += key.String()
		}
	}
	return m, nil
}

// connectCmd runs the interactive connect flow off the update loop. The
// form answers are replayed through a scripted asker so the manager's
// populate sequence sees them as prompt results.
func (m Model) connectCmd() tea.Cmd {
	answers := map[string]string{
		"Server URL": strings.TrimSpace(m.formInputs[0]),
		"Username":   strings.TrimSpace(m.formInputs[1]),
		"Password":   m.formInputs[2],
	}
	manager := connection.NewManager(m.cfg, m.store, formAsker(answers), m.log)

	return func() tea.Msg {
		ok, err := manager.Connect(context.Background())
		return connectResult{ok: ok, err: err}
	}
}

// formAsker answers the manager's prompts from the collected form values.
type formAsker map[string]string

func (f formAsker) Ask(req prompt.Request) (string, error) {
	answer := f[req.Message]
	if answer == "" {
		answer = req.Default
	}
	if answer != "" && req.Validate != nil {
		if err := req.Validate(answer); err != nil {
			return "", nil
		}
	}
	return answer, nil
}
