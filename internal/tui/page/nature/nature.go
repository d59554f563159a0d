package nature

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/components/card"
	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/theme"
)

const (
	FieldStatus  = "nature-status"
	FieldSoil    = "nature-soil"
	FieldFire    = "nature-fire"
	FieldSpecies = "nature-species"

	ChartBiodiversity = "nature-chart"

	chartBase = 30
)

func Render(b *display.Board, charts *chart.Charts) {
	b.Add(FieldStatus, "", "STABLE", theme.ToneNature)
	b.Add(FieldSoil, "SOIL MOISTURE", "28%", theme.ToneSafe)
	b.Add(FieldFire, "FIRE RISK", "LOW", theme.ToneSafe)
	b.Add(FieldSpecies, "SPECIES", "NORMAL", theme.ToneSafe)

	charts.Mount(ChartBiodiversity)
	charts.Draw(ChartBiodiversity, chart.Synthesize(chartBase), theme.ColorNature)
}

func View(t theme.Theme, b *display.Board, charts *chart.Charts, width int) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		card.Hero(t, "BIODIVERSITY", b.Text(FieldStatus), theme.ColorNature, width),
		card.Grid(t, b, width, FieldSoil, FieldFire, FieldSpecies),
		card.Section(t, "VEGETATION INDEX"),
		charts.Render(ChartBiodiversity, width, 7),
	)
}
