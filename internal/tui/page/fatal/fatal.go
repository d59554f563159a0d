// Package fatal is the surface shown when the console cannot recover.
package fatal

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/xerrors"
)

const (
	hintQuit   = "Press q to quit"
	hintResize = "Resize the terminal or restart earth"
)

func View(t theme.Theme, err error, width, height int) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	hint := hintQuit
	if xerrors.IsKind(err, xerrors.KindSurface) {
		hint = hintResize + " · " + hintQuit
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ColorDanger).Bold(true).Render("EARTH could not start"),
		"",
		t.Muted().Render(msg),
		"",
		lipgloss.NewStyle().Foreground(theme.ColorDim).Render(hint),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
