package login

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/page/splash"
	"github.com/garrettladley/earth/internal/tui/theme"
)

type Phase uint

const (
	PhaseWelcome Phase = iota
	PhaseAuthenticating
	PhaseError
)

type State struct {
	Phase    Phase
	ErrorMsg string
}

// Fail shows err on the blocking error surface.
func (s *State) Fail(err error) {
	s.Phase = PhaseError
	s.ErrorMsg = "Login Error: " + err.Error()
}

// Dismiss returns to the welcome surface. It reports whether an error was
// showing.
func (s *State) Dismiss() bool {
	if s.Phase != PhaseError {
		return false
	}
	s.Phase = PhaseWelcome
	s.ErrorMsg = ""
	return true
}

func View(t theme.Theme, state State, width, height int) string {
	var content string

	switch state.Phase {
	case PhaseWelcome:
		content = welcomeView(t)
	case PhaseAuthenticating:
		content = authenticatingView(t)
	case PhaseError:
		content = errorView(t, state.ErrorMsg)
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(theme.ColorHome).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(theme.ColorWhite)
	hintStyle     = lipgloss.NewStyle().Foreground(theme.ColorDim)
)

func welcomeView(t theme.Theme) string {
	buttonStyle := lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(theme.ColorHome).
		Padding(0, 2).
		Bold(true)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		titleStyle.Render("Sign in to the command console"),
		"",
		subtitleStyle.Render("Planetary risk intelligence for your location"),
		"",
		"",
		buttonStyle.Render("Press Enter to sign in with Google"),
		"",
		hintStyle.Render("This will open your browser"),
	)
}

func authenticatingView(t theme.Theme) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		titleStyle.Render("Signing in..."),
		"",
		subtitleStyle.Render("Complete the sign-in in your browser"),
		"",
		"",
		hintStyle.Render("Waiting for authorization..."),
	)
}

func errorView(t theme.Theme, errorMsg string) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		lipgloss.NewStyle().Foreground(theme.ColorDanger).Bold(true).Render("Sign-in Failed"),
		"",
		lipgloss.NewStyle().Foreground(theme.ColorDanger).Render(errorMsg),
		"",
		hintStyle.Render("Press Enter to dismiss, or q to quit"),
	)
}
