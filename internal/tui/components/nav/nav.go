// Package nav renders the view navigation bar.
package nav

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/tui/view"
)

var (
	itemStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(theme.ColorSlate)
	activeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(theme.ColorBgDark).Bold(true)
)

func accent(id view.ID) lipgloss.Style {
	switch id {
	case view.Ocean:
		return activeStyle.Background(theme.ColorOcean)
	case view.Nature:
		return activeStyle.Background(theme.ColorNature)
	case view.Space:
		return activeStyle.Background(theme.ColorSpace)
	default:
		return activeStyle.Background(theme.ColorHome)
	}
}

// Render draws the bar with the active view highlighted. Settings has no
// tab, so while it is open nothing is highlighted.
func Render(ctrl *view.Controller) string {
	items := make([]string, 0, len(view.Nav))
	for i, id := range view.Nav {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(id.String()))
		if ctrl.IsActive(id) {
			items = append(items, accent(id).Render(label))
		} else {
			items = append(items, itemStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
