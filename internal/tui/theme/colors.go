package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
	ColorSlate = lipgloss.Color("#94A3B8") // secondary text, axis labels
)

var (
	ColorHome   = lipgloss.Color("#10B981") // dashboard, CTA, safe readings
	ColorOcean  = lipgloss.Color("#38BDF8")
	ColorNature = lipgloss.Color("#4ADE80")
	ColorSpace  = lipgloss.Color("#A855F7")
	ColorWarn   = lipgloss.Color("#FACC15")
	ColorDanger = lipgloss.Color("#EF4444")
)

var (
	ColorBgDark  = lipgloss.Color("#0F172A") // page background
	ColorBgLight = lipgloss.Color("#334155") // card borders, unfilled gauge arc
)
