// Package braille turns drawille canvases into colored terminal text.
//
// A braille cell is 2 dots wide and 4 dots tall, so a canvas of w×h dots
// renders as w/2 columns by h/4 rows.
package braille

import (
	"image/color"
	"strings"
	"unicode"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"
)

const (
	Empty      rune = '⠀'
	ansiEscape rune = '\x1b'
)

// Rows renders the canvas region (0,0)-(width,height) in dots, padded or
// truncated to exactly width/2 columns and height/4 rows.
func Rows(canvas *drawille.Canvas, width, height int) string {
	var (
		cols  = width / 2
		lines = height / 4
		rows  = canvas.Rows(0, 0, width, height)
		out   = make([]string, 0, lines)
	)

	for i := range lines {
		if i >= len(rows) {
			out = append(out, strings.Repeat(" ", cols))
			continue
		}
		line := []rune(rows[i])
		switch {
		case len(line) < cols:
			out = append(out, string(line)+strings.Repeat(" ", cols-len(line)))
		case len(line) > cols:
			out = append(out, string(line[:cols]))
		default:
			out = append(out, string(line))
		}
	}

	return strings.Join(out, "\n")
}

// Merge lays fill over bg cell by cell. Cells where both have dots are
// ORed together and take the fill color.
func Merge(bg, fill string, bgColor, fillColor color.Color) string {
	var (
		bgLines   = strings.Split(bg, "\n")
		fillLines = strings.Split(fill, "\n")
		out       = make([]string, 0, len(bgLines))
		bgStyle   = lipgloss.NewStyle().Foreground(bgColor)
		fillStyle = lipgloss.NewStyle().Foreground(fillColor)
	)

	for i, line := range bgLines {
		bgRunes := []rune(line)
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var b strings.Builder
		for j, bgChar := range bgRunes {
			fillChar := ' '
			if j < len(fillRunes) {
				fillChar = fillRunes[j]
			}

			bgIsBraille := IsBraille(bgChar)
			fillHasDots := IsBraille(fillChar) && fillChar != Empty

			switch {
			case fillHasDots && bgIsBraille:
				b.WriteString(fillStyle.Render(string(Combine(bgChar, fillChar))))
			case fillHasDots:
				b.WriteString(fillStyle.Render(string(fillChar)))
			case bgIsBraille:
				b.WriteString(bgStyle.Render(string(bgChar)))
			default:
				b.WriteRune(' ')
			}
		}
		out = append(out, b.String())
	}

	return strings.Join(out, "\n")
}

// IsBraille reports whether r is in the braille block U+2800..U+28FF.
func IsBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// Combine ORs the dot patterns of two braille cells.
func Combine(a, b rune) rune {
	return Empty + ((a - Empty) | (b - Empty))
}

// Stamp writes the visible span of each foreground line over background,
// keeping the background's styling on either side.
func Stamp(background, foreground string) string {
	var (
		bgLines  = strings.Split(background, "\n")
		fgLines  = strings.Split(foreground, "\n")
		maxLines = max(len(bgLines), len(fgLines))
		out      = make([]string, maxLines)
	)

	for i := range maxLines {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		fgStart, fgEnd := -1, -1
		for idx, r := range []rune(StripANSI(fgLine)) {
			if r != ' ' {
				if fgStart == -1 {
					fgStart = idx
				}
				fgEnd = idx + 1
			}
		}

		if fgStart == -1 {
			out[i] = bgLine
			continue
		}

		bgWidth := len([]rune(StripANSI(bgLine)))

		var b strings.Builder
		b.WriteString(segment(bgLine, 0, min(fgStart, bgWidth)))
		for j := bgWidth; j < fgStart; j++ {
			b.WriteRune(' ')
		}
		b.WriteString(segment(fgLine, fgStart, fgEnd))
		if fgEnd < bgWidth {
			b.WriteString(segment(bgLine, fgEnd, bgWidth))
		}

		out[i] = b.String()
	}

	return strings.Join(out, "\n")
}

// segment returns visible characters [start,end) of a styled string along
// with the escape sequences that precede each of them.
func segment(styled string, start, end int) string {
	var (
		out      strings.Builder
		pending  strings.Builder
		visible  = 0
		inEscape = false
	)

	for _, r := range styled {
		if r == ansiEscape {
			inEscape = true
			pending.WriteRune(r)
			continue
		}
		if inEscape {
			pending.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visible >= start && visible < end {
			out.WriteString(pending.String())
			out.WriteRune(r)
		}
		pending.Reset()
		visible++
	}

	return out.String()
}

func StripANSI(s string) string {
	var (
		out      strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
