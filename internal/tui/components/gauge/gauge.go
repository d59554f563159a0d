// Package gauge draws the circular risk gauge shown in the dashboard hero.
package gauge

import (
	"fmt"
	"image/color"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/components/braille"
	"github.com/garrettladley/earth/internal/tui/theme"
)

// default size in braille dots: 14 columns by 7 rows, enough for a hollow
// center holding the score
const (
	defaultDotsWidth  = 28
	defaultDotsHeight = 28
)

type Gauge struct {
	Value     *float64 // nil = no data yet
	Max       float64
	Label     string
	Text      string // center text; derived from Value when empty
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color

	dotsWidth  int
	dotsHeight int
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

// WithText overrides the center text.
func WithText(text string) Option {
	return func(g *Gauge) { g.Text = text }
}

// WithSize sets the gauge size in braille dots. Both are rounded down to a
// whole number of cells.
func WithSize(dotsWidth, dotsHeight int) Option {
	return func(g *Gauge) {
		g.dotsWidth = dotsWidth - dotsWidth%2
		g.dotsHeight = dotsHeight - dotsHeight%4
	}
}

func New(value *float64, max float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:      value,
		Max:        max,
		Label:      label,
		Color:      c,
		BgColor:    theme.ColorBgLight,
		TextColor:  theme.ColorWhite,
		dotsWidth:  defaultDotsWidth,
		dotsHeight: defaultDotsHeight,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Fraction is Value/Max clamped to [0,1].
func (g Gauge) Fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return min(max(*g.Value/g.Max, 0), 1)
}

func (g Gauge) text() string {
	if g.Text != "" {
		return g.Text
	}
	if g.Value == nil {
		return "--"
	}
	return fmt.Sprintf("%.0f", *g.Value)
}

func (g Gauge) Render() string {
	canvas := drawille.NewCanvas()

	var (
		centerX = float64(g.dotsWidth) / 2
		centerY = float64(g.dotsHeight) / 2
		radius  = float64(min(g.dotsWidth, g.dotsHeight))/2 - 1
	)

	drawFullArc(&canvas, centerX, centerY, radius)
	track := braille.Rows(&canvas, g.dotsWidth, g.dotsHeight)

	canvas.Clear()
	if fraction := g.Fraction(); fraction > 0 {
		drawFilledArc(&canvas, centerX, centerY, radius, fraction)
	}
	filled := braille.Rows(&canvas, g.dotsWidth, g.dotsHeight)

	ring := braille.Merge(track, filled, g.BgColor, g.Color)

	var (
		ringWidth  = lipgloss.Width(ring)
		ringHeight = lipgloss.Height(ring)
	)

	value := lipgloss.Place(
		ringWidth,
		ringHeight,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Render(g.text()),
	)

	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorSlate).
		Bold(true).
		Width(ringWidth).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		braille.Stamp(ring, value),
		labelStyle.Render(g.Label),
	)
}
