package dashboard

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/tui/components/card"
	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/components/gauge"
	"github.com/garrettladley/earth/internal/tui/theme"
)

const (
	FieldScore   = "hero-score"
	FieldStatus  = "hero-status-text"
	FieldMessage = "hero-msg"
	FieldUV      = "val-uv"
	FieldAQI     = "val-aqi"
	FieldPower   = "stat-power"
	FieldRoad    = "stat-road"
	FieldNet     = "stat-net"

	ChartRisk = "risk-chart"
)

const (
	chartBase     = 20
	riskThreshold = 40
	aqiModerate   = 50
	aqiFallback   = 42

	placeholder = "--"
)

const (
	StatusRisk    = "RISK DETECTED"
	StatusNominal = "SYSTEM NOMINAL"
)

// State mirrors the numeric score behind FieldScore for the gauge.
type State struct {
	Score *float64
}

// Render adds the dashboard's fields and chart container.
func Render(b *display.Board, charts *chart.Charts) {
	b.Add(FieldScore, "", placeholder, theme.ToneDefault)
	b.Add(FieldStatus, "", "ANALYZING", theme.ToneSafe)
	b.Add(FieldMessage, "", "Connecting to sensor grid...", theme.ToneMuted)
	b.Add(FieldUV, "UV", "High (7)", theme.ToneWarn)
	b.Add(FieldAQI, "AQI", AQILabel(aqiFallback), theme.ToneSafe)
	b.Add(FieldPower, "POWER GRID", placeholder, theme.ToneSafe)
	b.Add(FieldRoad, "ROAD NETWORK", placeholder, theme.ToneSafe)
	b.Add(FieldNet, "COMMUNICATION", placeholder, theme.ToneSafe)
	charts.Mount(ChartRisk)
}

func StatusText(score int) string {
	if score > riskThreshold {
		return StatusRisk
	}
	return StatusNominal
}

func statusTone(score int) theme.Tone {
	if score > riskThreshold {
		return theme.ToneDanger
	}
	return theme.ToneSafe
}

// AQILabel formats a US AQI reading. Zero means no reading.
func AQILabel(aqi float64) string {
	if aqi == 0 {
		aqi = aqiFallback
	}
	level := "Good"
	if aqi > aqiModerate {
		level = "Moderate"
	}
	return level + " (" + strconv.FormatFloat(aqi, 'f', -1, 64) + ")"
}

// ApplyPrediction patches the hero fields and redraws the forecast.
func ApplyPrediction(b *display.Board, charts *chart.Charts, state *State, trend *earth.FloodTrend) {
	a := trend.Analysis
	score := a.Score()

	b.PatchText(FieldScore, strconv.Itoa(score))
	b.PatchText(FieldMessage, a.Message)
	b.Patch(FieldStatus, StatusText(score), statusTone(score))

	if a.AirQuality != nil {
		b.PatchText(FieldAQI, AQILabel(a.AirQuality.USAQI()))
	}

	value := float64(score)
	state.Score = &value

	charts.Draw(ChartRisk, chart.Synthesize(chartBase), theme.ColorHome)
}

func ApplyInfra(b *display.Board, status *earth.InfraStatus) {
	b.Patch(FieldPower, status.PowerGridRisk, theme.ToneSafe)
	b.Patch(FieldRoad, status.RoadNetworkRisk, theme.ToneSafe)
	b.Patch(FieldNet, status.InternetRisk, theme.ToneSafe)
}

func View(t theme.Theme, b *display.Board, charts *chart.Charts, state State, width int) string {
	status, _ := b.Get(FieldStatus)

	g := gauge.New(
		state.Score,
		100,
		"RISK INDEX",
		status.Tone.Color(),
		gauge.WithText(b.Text(FieldScore)),
	)

	uv, _ := b.Get(FieldUV)
	aqi, _ := b.Get(FieldAQI)
	readings := t.Muted().Render("UV: ") + t.Toned(uv.Tone).Render(uv.Text) +
		"   " + t.Muted().Render("AQI: ") + t.Toned(aqi.Tone).Render(aqi.Text)

	ring := g.Render()
	hero := card.Hero(
		t,
		"PLANETARY STATUS",
		status.Text,
		status.Tone.Color(),
		max(width-lipgloss.Width(ring)-2, 20),
		t.Muted().Render(b.Text(FieldMessage)),
		"",
		readings,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, ring, "  ", hero),
		card.Section(t, "INFRASTRUCTURE HEALTH"),
		card.Grid(t, b, width, FieldPower, FieldRoad, FieldNet),
		card.Section(t, "7-DAY RISK FORECAST"),
		charts.Render(ChartRisk, width, 7),
	)
}
