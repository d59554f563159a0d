// Package chart draws small area charts on a braille canvas.
package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/tui/components/braille"
	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/xerrors"
	"github.com/garrettladley/earth/internal/xslog"
)

type Point struct {
	Label string
	Value float64
}

type Series []Point

// forecast offsets applied to a base value, one per horizon step
var forecastOffsets = [...]struct {
	label  string
	offset float64
}{
	{"T", 0},
	{"+1", 5},
	{"+2", 2},
	{"+3", 8},
	{"+4", 12},
}

// Synthesize builds the five-step forecast series around base.
func Synthesize(base float64) Series {
	s := make(Series, 0, len(forecastOffsets))
	for _, f := range forecastOffsets {
		s = append(s, Point{Label: f.label, Value: base + f.offset})
	}
	return s
}

func (s Series) bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range s {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	// leave a strip of area under the lowest point
	lo -= (hi - lo) * 0.15
	return lo, hi
}

type Chart struct {
	Series Series
	Color  color.Color
}

// Charts holds at most one chart per named container.
type Charts struct {
	containers map[string]*Chart
	logger     *slog.Logger
}

func NewCharts(logger *slog.Logger) *Charts {
	if logger == nil {
		logger = slog.Default()
	}
	return &Charts{
		containers: make(map[string]*Chart),
		logger:     logger,
	}
}

// Mount creates an empty container. Mounting an existing one is a no-op.
func (c *Charts) Mount(container string) {
	if _, ok := c.containers[container]; ok {
		return
	}
	c.containers[container] = nil
}

func (c *Charts) Mounted(container string) bool {
	_, ok := c.containers[container]
	return ok
}

// Draw replaces whatever chart the container held. It reports false and
// draws nothing when the container was never mounted.
func (c *Charts) Draw(container string, s Series, col color.Color) bool {
	if _, ok := c.containers[container]; !ok {
		err := xerrors.MissingTarget(xerrors.WithMessage("chart container " + container + " not found"))
		c.logger.Debug("chart container missing",
			xslog.Field(container),
			xslog.Error(err),
			xslog.ErrorKind(err.Kind),
		)
		return false
	}
	c.containers[container] = &Chart{Series: append(Series(nil), s...), Color: col}
	return true
}

// Get returns the container's chart, or nil when it is empty or missing.
func (c *Charts) Get(container string) *Chart {
	return c.containers[container]
}

// Render draws the container at width×height cells, or an empty box when
// nothing has been drawn yet.
func (c *Charts) Render(container string, width, height int) string {
	ch := c.Get(container)
	if ch == nil {
		return emptyBox(width, height)
	}
	return ch.Render(width, height)
}

const axisWidth = 4

// Render draws the chart as a filled area with its axis. width and height
// are in terminal cells and include the axis and label rows.
func (ch Chart) Render(width, height int) string {
	plotCols := max(width-axisWidth, len(ch.Series))
	plotRows := max(height-1, 2)
	if len(ch.Series) == 0 {
		return emptyBox(width, height)
	}

	var (
		dotsW  = plotCols * 2
		dotsH  = plotRows * 4
		lo, hi = ch.Series.bounds()
		line   = drawille.NewCanvas()
		area   = drawille.NewCanvas()
	)

	yAt := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(dotsH-1)))
	}

	for x := range dotsW {
		v := ch.valueAt(float64(x) / float64(max(dotsW-1, 1)))
		top := yAt(v)
		line.Set(x, top)
		for y := top + 1; y < dotsH; y++ {
			// sparse fill reads as a translucent area
			if (x+y)%3 == 0 {
				area.Set(x, y)
			}
		}
	}

	fillColor := theme.ColorBgLight
	plot := braille.Merge(
		braille.Rows(&area, dotsW, dotsH),
		braille.Rows(&line, dotsW, dotsH),
		fillColor,
		ch.Color,
	)

	axis := lipgloss.NewStyle().Foreground(theme.ColorSlate)
	yLabels := make([]string, plotRows)
	for i := range yLabels {
		yLabels[i] = strings.Repeat(" ", axisWidth)
	}
	yLabels[0] = axis.Render(fmt.Sprintf("%*.0f", axisWidth-1, hi) + " ")
	yLabels[plotRows-1] = axis.Render(fmt.Sprintf("%*.0f", axisWidth-1, lo) + " ")

	body := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(yLabels, "\n"), plot)
	return lipgloss.JoinVertical(lipgloss.Left, body, axis.Render(ch.xLabels(plotCols)))
}

// valueAt linearly interpolates the series at t in [0,1].
func (ch Chart) valueAt(t float64) float64 {
	n := len(ch.Series)
	if n == 1 {
		return ch.Series[0].Value
	}
	pos := t * float64(n-1)
	i := min(int(pos), n-2)
	frac := pos - float64(i)
	return ch.Series[i].Value + (ch.Series[i+1].Value-ch.Series[i].Value)*frac
}

func (ch Chart) xLabels(cols int) string {
	row := []rune(strings.Repeat(" ", axisWidth+cols))
	n := len(ch.Series)
	for i, p := range ch.Series {
		col := 0
		if n > 1 {
			col = int(math.Round(float64(i) / float64(n-1) * float64(cols-1)))
		}
		label := []rune(p.Label)
		start := min(axisWidth+col-len(label)/2, len(row)-len(label))
		start = max(start, axisWidth)
		copy(row[start:], label)
	}
	return string(row)
}

func emptyBox(width, height int) string {
	lines := make([]string, max(height, 1))
	for i := range lines {
		lines[i] = strings.Repeat(" ", max(width, 0))
	}
	return strings.Join(lines, "\n")
}
