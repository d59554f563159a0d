package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows who is signed in.
type Indicator struct {
	Checked bool
	Email   string
}

func (a Indicator) Render() string {
	if !a.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if a.Email != "" {
		return lipgloss.NewStyle().
			Foreground(theme.ColorHome).
			Render(statusDot + " " + a.Email)
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Render(statusDot + " signed out")
}
