package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-portfolio/models"
)

// LoginModel is the sign-in form. A successful submit yields a [LoginResult]
// that [RootModel] uses to return the admin to the page they asked for.
type LoginModel struct {
	shell *shell

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(sh *shell) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		shell:  sh,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Clears the password and starts the cursor-blink
// animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.inputs[1].SetValue("")
	return textinput.Blink
}

func (m *LoginModel) capturingInput() bool { return true }

// Update implements [tea.Model]. Keys other than esc, tab/arrows and enter go
// to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = errorText(result.Err)
		} else {
			m.errMsg = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, nil
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if login == "" || pass == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	labels := []string{"Username", "Password"}
	rows := make([]string, 0, len(labels)+3)
	for i, label := range labels {
		name := loginLabelStyle.Render(label)
		if i == m.focus {
			name = accentStyle(m.shell.theme).Inherit(loginLabelStyle).Render(label)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, name, m.inputs[i].View()))
	}

	button := "[ Sign in ]"
	if m.submitting {
		button = "[ Signing in... ]"
	}
	rows = append(rows, "", button)

	if m.errMsg != "" {
		rows = append(rows, "", errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("ADMIN LOGIN", lipgloss.JoinVertical(lipgloss.Left, rows...), "tab: next field │ enter: sign in")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.shell.ctx
	auth := m.shell.services.Auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.LoginRequest{
			Username: login,
			Password: pass,
		})
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
