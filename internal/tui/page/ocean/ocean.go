package ocean

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/geo"
	"github.com/garrettladley/earth/internal/tui/components/card"
	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/theme"
)

const (
	FieldStatus = "ocean-status"
	FieldTemp   = "ocean-temp"
	FieldWave   = "ocean-wave"
	FieldTide   = "ocean-tide"

	ChartTide = "ocean-chart"

	chartBase = 15
)

// Label is the hero status for a monitored longitude.
func Label(lon float64) string {
	return "MONITORING: " + geo.OceanFor(lon).String()
}

// Render adds the ocean fields and draws the tidal forecast.
func Render(b *display.Board, charts *chart.Charts, lon float64) {
	b.Add(FieldStatus, "", Label(lon), theme.ToneOcean)
	b.Add(FieldTemp, "WATER TEMP", "26.2°C", theme.ToneOcean)
	b.Add(FieldWave, "WAVE HEIGHT", "1.1m", theme.ToneOcean)
	b.Add(FieldTide, "TIDE LEVEL", "FALLING", theme.ToneOcean)

	charts.Mount(ChartTide)
	charts.Draw(ChartTide, chart.Synthesize(chartBase), theme.ColorOcean)
}

func View(t theme.Theme, b *display.Board, charts *chart.Charts, width int) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		card.Hero(t, "OCEAN INTELLIGENCE", b.Text(FieldStatus), theme.ColorOcean, width),
		card.Grid(t, b, width, FieldTemp, FieldWave, FieldTide),
		card.Section(t, "TIDAL FORECAST (24H)"),
		charts.Render(ChartTide, width, 7),
	)
}
