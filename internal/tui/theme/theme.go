package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Tone is the semantic color of a displayed value.
type Tone uint8

const (
	ToneDefault Tone = iota
	ToneSafe
	ToneOcean
	ToneNature
	ToneSpace
	ToneWarn
	ToneDanger
	ToneMuted
)

func (t Tone) Color() color.Color {
	switch t {
	case ToneSafe:
		return ColorHome
	case ToneOcean:
		return ColorOcean
	case ToneNature:
		return ColorNature
	case ToneSpace:
		return ColorSpace
	case ToneWarn:
		return ColorWarn
	case ToneDanger:
		return ColorDanger
	case ToneMuted:
		return ColorSlate
	default:
		return ColorWhite
	}
}

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorHome).Bold(true)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSlate)
}

// Label styles the small uppercase captions above values.
func (t Theme) Label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSlate).Bold(true)
}

func (t Theme) Toned(tone Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(tone.Color()).Bold(true)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
