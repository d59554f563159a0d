package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/oauth2"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/tui/components/footer"
	"github.com/garrettladley/earth/internal/tui/components/nav"
	"github.com/garrettladley/earth/internal/tui/page/dashboard"
	"github.com/garrettladley/earth/internal/tui/page/login"
	"github.com/garrettladley/earth/internal/tui/page/nature"
	"github.com/garrettladley/earth/internal/tui/page/ocean"
	"github.com/garrettladley/earth/internal/tui/page/settings"
	"github.com/garrettladley/earth/internal/tui/page/space"
	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/tui/view"
	"github.com/garrettladley/earth/internal/xslog"
)

const bodyPadding = 2

func staticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.visible() {
	case appPage:
		return m, m.handleAppKey(msg)

	case loginPage:
		switch key {
		case "q":
			return m, tea.Quit
		case "enter":
			if m.state.login.Dismiss() || m.state.login.Phase != login.PhaseWelcome {
				return m, nil
			}
			m.state.login.Phase = login.PhaseAuthenticating
			return m, login.SignInCmd(m.deps.Ctx, m.deps.Provider)
		}

	default:
		if key == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleAppKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if m.controller.IsActive(view.Settings) {
		switch settings.HandleKey(m.board, &m.state.settings, msg) {
		case settings.KeySaved:
			m.logger.InfoContext(m.deps.Ctx, "phone number saved",
				xslog.Tab(settings.TabNotifications.String()),
			)
			return nil
		case settings.KeyHandled:
			return nil
		}
	}

	switch key {
	case "q":
		return tea.Quit
	case "1", "2", "3", "4":
		return m.activate(view.Nav[key[0]-'1'])
	case "tab":
		active, _ := m.controller.Active()
		return m.activate(view.Next(active))
	case "shift+tab":
		active, _ := m.controller.Active()
		return m.activate(view.Prev(active))
	case "s":
		return m.activate(view.Settings)
	case "esc":
		if m.controller.IsActive(view.Settings) {
			return m.activate(view.Dashboard)
		}
	case "ctrl+o":
		return signOutCmd(m.deps.Ctx, m.deps.Provider)
	}
	return nil
}

// activate switches to id and refreshes it. Unmounted views and presses
// before the first identity are no-ops.
func (m *Model) activate(id view.ID) tea.Cmd {
	if !m.navReady || !m.controller.Activate(id) {
		return nil
	}
	m.logger.DebugContext(m.deps.Ctx, "view activated",
		xslog.View(id.String()),
		xslog.Generation(m.controller.Generation(id)),
	)
	return m.refresh(id)
}

// refresh renders a view's static structure the first time it is shown.
// The dashboard also fetches fresh data on every activation.
func (m *Model) refresh(id view.ID) tea.Cmd {
	first := m.controller.MarkRendered(id)

	switch id {
	case view.Dashboard:
		if first {
			dashboard.Render(m.board, m.charts)
		}
		return m.fetchDashboard()
	case view.Ocean:
		if first {
			ocean.Render(m.board, m.charts, m.deps.Location.Longitude)
		}
	case view.Nature:
		if first {
			nature.Render(m.board, m.charts)
		}
	case view.Space:
		if first {
			space.Render(m.board, m.charts)
		}
	case view.Settings:
		if first {
			settings.Render(m.board, &m.state.settings)
		}
	}
	return nil
}

func (m *Model) fetchDashboard() tea.Cmd {
	var (
		predict earth.PredictService
		infra   earth.InfraService
	)
	if m.client != nil {
		predict, infra = m.client.Predict, m.client.Infra
	}

	at := earth.Coordinates{
		Latitude:  m.deps.Location.Latitude,
		Longitude: m.deps.Location.Longitude,
	}
	ticket := m.controller.Ticket(view.Dashboard)

	return tea.Batch(
		dashboard.FetchPredictionCmd(m.deps.Ctx, predict, at, ticket, m.deps.FetchTimeout),
		dashboard.FetchInfraCmd(m.deps.Ctx, infra, at, ticket, m.deps.FetchTimeout),
	)
}

func (m *Model) appView() string {
	width := max(m.viewportWidth-bodyPadding*2, 20)

	title := lipgloss.NewStyle().Foreground(theme.ColorHome).Bold(true).Render("EARTH") +
		m.theme.Muted().Render("  COMMAND CONSOLE")
	right := m.indicator.Render() + m.theme.Muted().Render("   s settings")
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(right), 1)
	header := title + strings.Repeat(" ", gap) + right

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		nav.Render(m.controller),
		"",
		m.activeView(width),
	)
	body = lipgloss.NewStyle().Padding(1, bodyPadding).Render(body)

	foot := footer.New(m.viewportWidth, m.hints()...).Render()
	height := max(m.viewportHeight-lipgloss.Height(foot), 0)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.Place(m.viewportWidth, height, lipgloss.Left, lipgloss.Top, body),
		foot,
	)
}

func (m *Model) activeView(width int) string {
	active, ok := m.controller.Active()
	if !ok {
		return ""
	}

	switch active {
	case view.Dashboard:
		return dashboard.View(m.theme, m.board, m.charts, m.state.dashboard, width)
	case view.Ocean:
		return ocean.View(m.theme, m.board, m.charts, width)
	case view.Nature:
		return nature.View(m.theme, m.board, m.charts, width)
	case view.Space:
		return space.View(m.theme, m.board, m.charts, width)
	case view.Settings:
		return settings.View(m.theme, m.board, m.state.settings, m.deps.Location, width)
	}
	return ""
}

func (m *Model) hints() []string {
	if m.controller.IsActive(view.Settings) {
		return []string{"←/→ tabs", "esc back", "ctrl+o sign out", "q quit"}
	}
	return []string{"1-4 views", "tab cycle", "s settings", "ctrl+o sign out", "q quit"}
}
