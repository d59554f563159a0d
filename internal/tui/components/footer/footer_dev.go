//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorWarn)

func (f Footer) rightContent() string {
	return devVersionStyle.Render("dev " + version.Get())
}
