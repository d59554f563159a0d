package space

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/components/card"
	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/theme"
)

const (
	FieldStatus = "space-status"
	FieldFlare  = "space-flare"
	FieldGeomag = "space-geomag"
	FieldNEO    = "space-neo"

	ChartActivity = "space-chart"

	chartBase = 50
)

func Render(b *display.Board, charts *chart.Charts) {
	b.Add(FieldStatus, "", "MODERATE", theme.ToneSpace)
	b.Add(FieldFlare, "FLARE RISK", "MEDIUM", theme.ToneWarn)
	b.Add(FieldGeomag, "GEOMAGNETIC", "K-Index 4", theme.ToneWarn)
	b.Add(FieldNEO, "NEO", "2 TRACKED", theme.ToneDanger)

	charts.Mount(ChartActivity)
	charts.Draw(ChartActivity, chart.Synthesize(chartBase), theme.ColorSpace)
}

func View(t theme.Theme, b *display.Board, charts *chart.Charts, width int) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		card.Hero(t, "SPACE WEATHER", b.Text(FieldStatus), theme.ColorSpace, width),
		card.Grid(t, b, width, FieldFlare, FieldGeomag, FieldNEO),
		card.Section(t, "SOLAR ACTIVITY"),
		charts.Render(ChartActivity, width, 7),
	)
}
