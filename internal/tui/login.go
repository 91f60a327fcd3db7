// ABOUTME: Login screen with username and password inputs
// ABOUTME: Shown whenever the session monitor reports no valid token

package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/tui/styles"
)

// loginScreen holds the credential inputs
type loginScreen struct {
	username textinput.Model
	password textinput.Model
	focus    int
	errText  string
}

func newLoginScreen() *loginScreen {
	username := textinput.New()
	username.Placeholder = "Benutzername"
	username.Focus()
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "Passwort"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64

	return &loginScreen{username: username, password: password}
}

func (l *loginScreen) setError(err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		l.errText = "Benutzername oder Passwort falsch"
		return
	}
	l.errText = err.Error()
}

// updateLogin handles key input on the login screen
func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := a.login
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if l.focus == 0 {
			l.focus = 1
			l.username.Blur()
			l.password.Focus()
		} else {
			l.focus = 0
			l.password.Blur()
			l.username.Focus()
		}
		return a, nil
	case "enter":
		if l.focus == 0 {
			l.focus = 1
			l.username.Blur()
			l.password.Focus()
			return a, nil
		}
		username := l.username.Value()
		password := l.password.Value()
		if username == "" || password == "" {
			l.errText = "Bitte Benutzername und Passwort eingeben"
			return a, nil
		}
		l.errText = ""
		a.loading = true
		return a, a.doLogin(username, password)
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return a, cmd
}

func (l *loginScreen) View() string {
	form := styles.Title.Render("Brauerei Kirschenholz") + "\n" +
		styles.Subtitle.Render("Verleih-Verwaltung") + "\n" +
		l.username.View() + "\n" +
		l.password.View()

	if l.errText != "" {
		form += "\n\n" + styles.ErrorBanner.Render(l.errText)
	}

	form += "\n" + styles.Help.Render("enter: anmelden • tab: Feld wechseln • ctrl+c: beenden")
	return lipgloss.NewStyle().Margin(1, 2).Render(styles.ActiveCard.Render(form))
}
