package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/session"
	"github.com/garrettladley/earth/internal/tui/components/auth"
	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
	"github.com/garrettladley/earth/internal/tui/page/dashboard"
	"github.com/garrettladley/earth/internal/tui/page/fatal"
	"github.com/garrettladley/earth/internal/tui/page/login"
	"github.com/garrettladley/earth/internal/tui/page/settings"
	"github.com/garrettladley/earth/internal/tui/page/splash"
	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/tui/view"
	"github.com/garrettladley/earth/internal/xerrors"
	"github.com/garrettladley/earth/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

const defaultFetchTimeout = 10 * time.Second

type page uint

const (
	splashPage page = iota
	loginPage
	appPage
	fatalPage
)

type state struct {
	login     login.State
	dashboard dashboard.State
	settings  settings.State
}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
	logger         *slog.Logger

	// splashDone is set once the splash timer fires; surface is the page
	// the auth state asks for.
	splashDone bool
	surface    page
	settled    bool
	err        error
	// authSeq counts auth transitions; retries carry the value they were
	// scheduled under.
	authSeq uint64

	gate        *session.Gate
	transitions <-chan *session.Identity
	unsubscribe func()

	identity  *session.Identity
	indicator auth.Indicator
	client    *earth.Client

	// navReady flips when the first identity arrives; until then key
	// presses never reach the controller.
	navReady   bool
	controller *view.Controller
	board      *display.Board
	charts     *chart.Charts

	state state
}

func New(deps Deps) *Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Ctx = xslog.WithLogger(deps.Ctx, deps.Logger)
	if deps.FetchTimeout <= 0 {
		deps.FetchTimeout = defaultFetchTimeout
	}
	if deps.Backoff.MaxAttempts == 0 {
		deps.Backoff = session.DefaultBackoff()
	}

	gate := session.NewGate(deps.Provider)
	transitions, unsubscribe := gate.Subscribe()

	return &Model{
		theme:       theme.New(),
		state:       state{settings: settings.NewState()},
		deps:        deps,
		logger:      deps.Logger,
		surface:     splashPage,
		gate:        gate,
		transitions: transitions,
		unsubscribe: unsubscribe,
		controller:  view.NewController(deps.Logger),
		board:       display.NewBoard(deps.Logger),
		charts:      chart.NewCharts(deps.Logger),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		splashTickCmd(),
		waitReadyCmd(m.deps.Ctx, m.gate),
		listenTransitionsCmd(m.gate, m.transitions),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case splash.TickMsg:
		m.splashDone = true

	case gateReadyMsg:
		if msg.gate != m.gate || m.settled {
			return m, nil
		}
		if msg.err != nil {
			m.logger.ErrorContext(m.deps.Ctx, "session gate failed", xslog.Error(msg.err))
			m.fail(xerrors.Auth(xerrors.WithMessage("session unavailable"), xerrors.WithCause(msg.err)))
			return m, nil
		}
		m.settled = true
		m.authSeq++
		return m, m.applyAuth(msg.identity, 0)

	case authChangedMsg:
		if msg.gate != m.gate {
			return m, nil
		}
		m.settled = true
		m.authSeq++
		return m, tea.Batch(
			m.applyAuth(msg.identity, 0),
			listenTransitionsCmd(m.gate, m.transitions),
		)

	case transitionsClosedMsg:
		// the gate was closed by a restart; nothing left to listen for

	case surfaceRetryMsg:
		if msg.gate != m.gate || msg.seq != m.authSeq {
			m.logger.DebugContext(m.deps.Ctx, "dropping superseded surface retry",
				xslog.Attempt(msg.attempt),
			)
			return m, nil
		}
		return m, m.applyAuth(msg.identity, msg.attempt)

	case login.SignInResultMsg:
		if msg.Err != nil {
			m.logger.WarnContext(m.deps.Ctx, "sign-in failed",
				xslog.Error(msg.Err),
				xslog.ErrorKind(xerrors.KindAuth),
			)
			m.state.login.Fail(msg.Err)
			return m, nil
		}
		// the gate stream delivers the identity; the login surface just
		// stops waiting
		m.state.login = login.State{}

	case signedOutMsg:
		if msg.err != nil {
			m.logger.ErrorContext(m.deps.Ctx, "sign-out failed", xslog.Error(msg.err))
			return m, nil
		}
		return m.restart()

	case dashboard.PredictionMsg:
		if !m.controller.Valid(msg.Ticket) {
			m.discard(msg.Ticket, "/predict/flood-trend")
			return m, nil
		}
		if msg.Err != nil {
			m.logFetchFailure("/predict/flood-trend", msg.Err)
			return m, nil
		}
		dashboard.ApplyPrediction(m.board, m.charts, &m.state.dashboard, msg.Trend)

	case dashboard.InfraMsg:
		if !m.controller.Valid(msg.Ticket) {
			m.discard(msg.Ticket, "/infra/status")
			return m, nil
		}
		if msg.Err != nil {
			m.logFetchFailure("/infra/status", msg.Err)
			return m, nil
		}
		dashboard.ApplyInfra(m.board, msg.Status)
	}

	return m, nil
}

// applyAuth moves the console to the surface matching id. Before the first
// window size arrives there is nothing to lay out, so the transition is
// retried with backoff until the attempts run out.
func (m *Model) applyAuth(id *session.Identity, attempt int) tea.Cmd {
	if !m.ready {
		delay, ok := m.deps.Backoff.Delay(attempt)
		if !ok {
			m.logger.ErrorContext(m.deps.Ctx, "surfaces never became available",
				xslog.Attempt(attempt),
				xslog.ErrorKind(xerrors.KindSurface),
			)
			m.fail(xerrors.Surface(xerrors.WithMessage("terminal never reported its size")))
			return nil
		}
		m.logger.DebugContext(m.deps.Ctx, "surface not ready, retrying",
			xslog.Attempt(attempt),
			xslog.Backoff(delay),
		)
		return surfaceRetryCmd(m.gate, m.authSeq, id, attempt+1, delay)
	}

	m.identity = id
	m.indicator = auth.Indicator{Checked: true}

	if id == nil {
		m.surface = loginPage
		m.client = nil
		return nil
	}

	m.indicator.Email = id.Email
	m.surface = appPage
	m.client = m.newClient(id)
	m.state.login = login.State{}

	if m.navReady {
		return nil
	}
	m.navReady = true
	m.controller.Mount(view.Dashboard, view.Ocean, view.Nature, view.Space, view.Settings)
	m.logger.InfoContext(m.deps.Ctx, "signed in", xslog.Email(id.Email))
	return m.activate(view.Dashboard)
}

func (m *Model) newClient(id *session.Identity) *earth.Client {
	opts := []earth.Option{earth.WithTimeout(m.deps.FetchTimeout)}
	if m.deps.APIURL != "" {
		opts = append(opts, earth.WithBaseURL(m.deps.APIURL))
	}
	return earth.New(staticToken(id.Token), opts...)
}

func (m *Model) fail(err error) {
	m.err = err
	m.surface = fatalPage
}

// restart rebuilds the console from scratch after sign-out. Only the
// terminal size carries over, since no new size event will arrive.
func (m *Model) restart() (tea.Model, tea.Cmd) {
	m.unsubscribe()
	m.gate.Close()

	fresh := New(m.deps)
	fresh.ready = m.ready
	fresh.viewportWidth = m.viewportWidth
	fresh.viewportHeight = m.viewportHeight

	m.logger.InfoContext(m.deps.Ctx, "signed out, console restarted")
	return fresh, fresh.Init()
}

func (m *Model) discard(t view.Ticket, endpoint string) {
	m.logger.DebugContext(m.deps.Ctx, "discarding stale result",
		xslog.Endpoint(endpoint),
		xslog.View(t.View.String()),
		xslog.Generation(t.Gen),
	)
}

func (m *Model) logFetchFailure(endpoint string, err error) {
	m.logger.WarnContext(m.deps.Ctx, "fetch failed",
		xslog.Endpoint(endpoint),
		xslog.Error(err),
		xslog.ErrorKind(xerrors.KindFetch),
	)
}

// visible is what is on screen: fatal beats everything, then the splash until
// both its timer and the auth state are in.
func (m *Model) visible() page {
	switch {
	case m.surface == fatalPage:
		return fatalPage
	case !m.splashDone || m.surface == splashPage:
		return splashPage
	default:
		return m.surface
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	current := m.visible()
	if current == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch current {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case loginPage:
		content = login.View(m.theme, m.state.login, m.viewportWidth, m.viewportHeight)
	case appPage:
		content = m.appView()
	case fatalPage:
		content = fatal.View(m.theme, m.err, m.viewportWidth, m.viewportHeight)
	}

	view.SetContent(content)
	return view
}
