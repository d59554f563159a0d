// Package card lays out the hero banner, stat tiles and section titles
// shared by the console views.
package card

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/theme"
)

const gridGap = 2

// Hero is the banner at the top of each view. lines are stacked under the
// status in order.
func Hero(t theme.Theme, label string, status string, accent color.Color, width int, lines ...string) string {
	rows := []string{
		t.Label().Render(label),
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(status),
	}
	rows = append(rows, lines...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		Width(max(width, 0)).
		Render(strings.Join(rows, "\n"))
}

// Stat renders one field as a labelled tile.
func Stat(t theme.Theme, f display.Field, width int) string {
	body := t.Label().Render(f.Label) + "\n" + t.Toned(f.Tone).Render(f.Text)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Width(max(width, 0)).
		Render(body)
}

// Grid renders the fields side by side, splitting width evenly.
func Grid(t theme.Theme, b *display.Board, width int, ids ...string) string {
	if len(ids) == 0 {
		return ""
	}

	// leave room for the tile border in case Width excludes it
	cellWidth := (width-gridGap*(len(ids)-1))/len(ids) - 2
	gap := strings.Repeat(" ", gridGap)

	cells := make([]string, 0, len(ids)*2)
	for i, id := range ids {
		f, ok := b.Get(id)
		if !ok {
			continue
		}
		if i > 0 {
			cells = append(cells, gap)
		}
		cells = append(cells, Stat(t, f, cellWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func Section(t theme.Theme, title string) string {
	return t.Label().MarginTop(1).Render(title)
}
