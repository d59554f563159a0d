package settings

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/earth/internal/config"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/version"
)

type Tab uint8

const (
	TabGeneral Tab = iota
	TabLocation
	TabNotifications
	TabAbout
)

var tabs = []Tab{TabGeneral, TabLocation, TabNotifications, TabAbout}

func (t Tab) String() string {
	switch t {
	case TabGeneral:
		return "general"
	case TabLocation:
		return "location"
	case TabNotifications:
		return "notifications"
	case TabAbout:
		return "about"
	default:
		return "unknown"
	}
}

const (
	FieldTitle   = "settings-title"
	FieldContent = "settings-content-area"
)

const SavedNotice = "Phone number saved."

type State struct {
	Tab    Tab
	Phone  textinput.Model
	Notice string
}

func NewState() State {
	return State{Phone: newPhoneInput()}
}

// Render adds the tab container and opens the general tab.
func Render(b *display.Board, s *State) {
	b.Add(FieldTitle, "", "SETTINGS", theme.ToneDefault)
	b.Add(FieldContent, "", "", theme.ToneDefault)
	LoadTab(b, s, TabGeneral)
}

// LoadTab swaps the content area to tab. The container itself is left
// alone; without it nothing changes.
func LoadTab(b *display.Board, s *State, tab Tab) bool {
	if !b.PatchText(FieldContent, tab.String()) {
		return false
	}
	s.Tab = tab
	s.Notice = ""
	return true
}

func step(tab Tab, delta int) Tab {
	n := len(tabs)
	return tabs[(int(tab)+delta+n)%n]
}

// Key is what the settings view did with a key press.
type Key uint8

const (
	KeyIgnored Key = iota
	KeyHandled
	KeySaved
)

// HandleKey applies a key press to the settings view.
func HandleKey(b *display.Board, s *State, msg tea.KeyPressMsg) Key {
	switch msg.String() {
	case "left":
		LoadTab(b, s, step(s.Tab, -1))
		return KeyHandled
	case "right":
		LoadTab(b, s, step(s.Tab, 1))
		return KeyHandled
	}

	if s.Tab != TabNotifications {
		return KeyIgnored
	}

	if msg.String() == "enter" {
		s.Notice = SavedNotice
		return KeySaved
	}
	if !isPhoneKey(msg) {
		return KeyIgnored
	}

	// rejected input still belongs to the field
	updatePhone(s, msg)
	s.Notice = ""
	return KeyHandled
}

func View(t theme.Theme, b *display.Board, s State, loc config.Location, width int) string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeStyle := tabStyle.Foreground(theme.ColorHome).Bold(true)
	idleStyle := tabStyle.Foreground(theme.ColorSlate)

	sidebar := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := strings.ToUpper(tab.String())
		if tab == s.Tab {
			sidebar = append(sidebar, activeStyle.Render("▌"+label))
		} else {
			sidebar = append(sidebar, idleStyle.Render(" "+label))
		}
	}

	side := lipgloss.JoinVertical(lipgloss.Left, sidebar...)
	panelWidth := max(width-lipgloss.Width(side)-4, 20)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 2).
		Width(panelWidth).
		Render(content(t, b, s, loc))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.Base().Bold(true).MarginBottom(1).Render(b.Text(FieldTitle)),
		lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", panel),
		t.Muted().MarginTop(1).Render("←/→ switch tab"),
	)
}

func content(t theme.Theme, b *display.Board, s State, loc config.Location) string {
	switch b.Text(FieldContent) {
	case TabGeneral.String():
		on := lipgloss.NewStyle().Foreground(theme.ColorBgDark).Background(theme.ColorHome).Bold(true).Padding(0, 1)
		off := lipgloss.NewStyle().Foreground(theme.ColorSlate).Padding(0, 1)
		return t.Label().Render("THEME") + "\n" + on.Render("DARK") + " " + off.Render("LIGHT")

	case TabLocation.String():
		return strings.Join([]string{
			t.Label().Render("LOCATION"),
			t.Base().Bold(true).Render(loc.Name),
			t.Muted().Render(fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude)),
			"",
			t.Muted().Render("Set EARTH_LAT/EARTH_LON or edit location.toml to move."),
		}, "\n")

	case TabNotifications.String():
		input := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.ColorHome).
			Padding(0, 1).
			Width(24).
			Render(s.Phone.View())

		rows := []string{
			lipgloss.NewStyle().Foreground(theme.ColorHome).Bold(true).Render("EARLY WARNING SYSTEM (THE ARK)"),
			t.Muted().Render("Receive autonomous alerts when risk probability exceeds 80%."),
			"",
			t.Label().Render("PHONE NUMBER"),
			input,
			t.Muted().Render("enter to save"),
		}
		if s.Notice != "" {
			rows = append(rows, t.Toned(theme.ToneSafe).Render(s.Notice))
		}
		return strings.Join(rows, "\n")

	case TabAbout.String():
		return t.Label().Render("INFO") + "\n" + t.Muted().Render("Version "+version.Get())
	}

	return ""
}
