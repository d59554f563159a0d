package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/theme"
)

var hintStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

type Footer struct {
	hints   []string
	width   int
	padding int
}

func New(width int, hints ...string) Footer {
	return Footer{
		hints:   hints,
		width:   width,
		padding: 2,
	}
}

func (f Footer) Render() string {
	left := hintStyle.Render(strings.Join(f.hints, "  ·  "))
	right := f.rightContent()

	spacer := max(f.width-lipgloss.Width(left)-lipgloss.Width(right)-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacer) + right)
}
