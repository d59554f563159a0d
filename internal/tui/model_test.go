package tui

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/config"
	"github.com/garrettladley/earth/internal/session"
	"github.com/garrettladley/earth/internal/session/sessiontest"
	"github.com/garrettladley/earth/internal/tui/page/dashboard"
	"github.com/garrettladley/earth/internal/tui/page/login"
	"github.com/garrettladley/earth/internal/tui/page/ocean"
	"github.com/garrettladley/earth/internal/tui/page/settings"
	"github.com/garrettladley/earth/internal/tui/page/splash"
	"github.com/garrettladley/earth/internal/tui/view"
	"github.com/garrettladley/earth/internal/xerrors"
)

var ranger = &session.Identity{Email: "ranger@earth.test", Token: "id-token"}

func newAPI(t *testing.T, status int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /predict/flood-trend", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer id-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"analysis":{"next_week_score":47.6,"message":"Heavy rain upstream","air_quality":{"current":{"us_aqi":77}}}}`))
	})
	mux.HandleFunc("GET /infra/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"power_grid_risk":"LOW","road_network_risk":"HIGH","internet_risk":"MODERATE"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newModel(t *testing.T, provider session.Provider, apiURL string) *Model {
	t.Helper()

	m := New(Deps{
		Ctx:          t.Context(),
		Logger:       slog.New(slog.DiscardHandler),
		Provider:     provider,
		APIURL:       apiURL,
		FetchTimeout: time.Second,
		Location:     config.DefaultLocation(),
		Backoff:      session.Backoff{Initial: time.Millisecond, Max: 4 * time.Millisecond, MaxAttempts: 8},
	})
	t.Cleanup(m.gate.Close)
	return m
}

// start brings m to the point where the terminal has a size and the splash
// has finished.
func start(t *testing.T, m *Model) tea.Cmd {
	t.Helper()

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(splash.TickMsg{})
	return settle(t, m)
}

func settle(t *testing.T, m *Model) tea.Cmd {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()

	_, cmd := m.Update(waitReadyCmd(ctx, m.gate)())
	return cmd
}

func nextTransition(t *testing.T, m *Model) tea.Msg {
	t.Helper()

	msgCh := make(chan tea.Msg, 1)
	go func() { msgCh <- listenTransitionsCmd(m.gate, m.transitions)() }()

	select {
	case msg := <-msgCh:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no auth transition")
		return nil
	}
}

// run executes cmd and every command it batches, returning their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, run(c)...)
	}
	return msgs
}

func feed(m *Model, msgs []tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func press(m *Model, key string) (tea.Model, tea.Cmd) {
	var k tea.KeyPressMsg
	switch key {
	case "enter":
		k = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		k = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		k = tea.KeyPressMsg{Code: tea.KeyTab}
	case "right":
		k = tea.KeyPressMsg{Code: tea.KeyRight}
	case "ctrl+o":
		k = tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		k = tea.KeyPressMsg{Code: r, Text: key}
	}
	return m.Update(k)
}

func TestModel_SignedInLoadsDashboard(t *testing.T) {
	t.Parallel()

	api := newAPI(t, http.StatusOK)
	m := newModel(t, sessiontest.New(ranger), api.URL)

	feed(m, run(start(t, m)))

	if got := m.visible(); got != appPage {
		t.Fatalf("visible() = %v, want app page", got)
	}
	if !m.controller.IsActive(view.Dashboard) {
		t.Fatal("dashboard is not active")
	}

	got := map[string]string{}
	for _, id := range []string{
		dashboard.FieldScore,
		dashboard.FieldStatus,
		dashboard.FieldMessage,
		dashboard.FieldAQI,
		dashboard.FieldPower,
		dashboard.FieldRoad,
		dashboard.FieldNet,
	} {
		got[id] = m.board.Text(id)
	}
	want := map[string]string{
		dashboard.FieldScore:   "48",
		dashboard.FieldStatus:  dashboard.StatusRisk,
		dashboard.FieldMessage: "Heavy rain upstream",
		dashboard.FieldAQI:     "Moderate (77)",
		dashboard.FieldPower:   "LOW",
		dashboard.FieldRoad:    "HIGH",
		dashboard.FieldNet:     "MODERATE",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dashboard fields mismatch (-want +got):\n%s", diff)
	}
	if m.charts.Get(dashboard.ChartRisk) == nil {
		t.Error("risk chart not drawn")
	}
}

func TestModel_FetchFailureKeepsPlaceholders(t *testing.T) {
	t.Parallel()

	api := newAPI(t, http.StatusInternalServerError)
	m := newModel(t, sessiontest.New(ranger), api.URL)

	feed(m, run(start(t, m)))

	for _, id := range []string{dashboard.FieldScore, dashboard.FieldPower, dashboard.FieldRoad, dashboard.FieldNet} {
		if got := m.board.Text(id); got != "--" {
			t.Errorf("%s = %q, want placeholder", id, got)
		}
	}
	if got := m.board.Text(dashboard.FieldStatus); got != "ANALYZING" {
		t.Errorf("status = %q, want ANALYZING", got)
	}
}

func TestModel_StaleDashboardResultDiscarded(t *testing.T) {
	t.Parallel()

	m := newModel(t, sessiontest.New(ranger), "")
	start(t, m)

	stale := m.controller.Ticket(view.Dashboard)
	press(m, "2")
	press(m, "1")

	score := 95.0
	m.Update(dashboard.PredictionMsg{
		Ticket: stale,
		Trend:  &earth.FloodTrend{Analysis: earth.Analysis{NextWeekScore: &score, Message: "late"}},
	})

	if got := m.board.Text(dashboard.FieldScore); got != "--" {
		t.Errorf("score = %q, stale result was applied", got)
	}

	m.Update(dashboard.PredictionMsg{
		Ticket: m.controller.Ticket(view.Dashboard),
		Trend:  &earth.FloodTrend{Analysis: earth.Analysis{NextWeekScore: &score, Message: "fresh"}},
	})
	if got := m.board.Text(dashboard.FieldScore); got != "95" {
		t.Errorf("score = %q, want 95", got)
	}
}

func TestModel_SignedOutShowsLogin(t *testing.T) {
	t.Parallel()

	m := newModel(t, sessiontest.New(nil), "")
	if cmd := start(t, m); cmd != nil {
		t.Error("signed-out readiness should not start any work")
	}

	if got := m.visible(); got != loginPage {
		t.Fatalf("visible() = %v, want login page", got)
	}

	for _, key := range []string{"1", "2", "s", "tab"} {
		press(m, key)
	}
	if _, ok := m.controller.Active(); ok {
		t.Error("navigation ran before any identity arrived")
	}
	if m.board.Len() != 0 {
		t.Errorf("board has %d fields, want none", m.board.Len())
	}
}

func TestModel_SignInAfterSignedOutReadiness(t *testing.T) {
	t.Parallel()

	provider := sessiontest.New(nil)
	provider.SignInIdentity = ranger
	m := newModel(t, provider, "")
	start(t, m)

	_, cmd := press(m, "enter")
	if m.state.login.Phase != login.PhaseAuthenticating {
		t.Fatalf("phase = %v, want authenticating", m.state.login.Phase)
	}
	feed(m, run(cmd))

	m.Update(nextTransition(t, m))

	if got := m.visible(); got != appPage {
		t.Fatalf("visible() = %v, want app page", got)
	}
	if !m.controller.IsActive(view.Dashboard) {
		t.Error("dashboard not activated after sign-in")
	}
	if m.identity == nil || m.identity.Email != ranger.Email {
		t.Errorf("identity = %+v, want %s", m.identity, ranger.Email)
	}
}

func TestModel_SignInFailureBlocksUntilDismissed(t *testing.T) {
	t.Parallel()

	provider := sessiontest.New(nil)
	provider.SignInErr = xerrors.Auth(xerrors.WithMessage("popup closed by user"))
	m := newModel(t, provider, "")
	start(t, m)

	_, cmd := press(m, "enter")
	feed(m, run(cmd))

	if m.state.login.Phase != login.PhaseError {
		t.Fatalf("phase = %v, want error", m.state.login.Phase)
	}
	if !strings.HasPrefix(m.state.login.ErrorMsg, "Login Error: ") {
		t.Errorf("ErrorMsg = %q", m.state.login.ErrorMsg)
	}

	if _, cmd := press(m, "enter"); cmd != nil {
		t.Error("dismissing the error started another sign-in")
	}
	if m.state.login.Phase != login.PhaseWelcome {
		t.Errorf("phase = %v, want welcome", m.state.login.Phase)
	}
	if got := provider.SignIns(); got != 1 {
		t.Errorf("SignIns() = %d, want 1", got)
	}
}

func TestModel_SignOutRestartsConsole(t *testing.T) {
	t.Parallel()

	provider := sessiontest.New(ranger)
	m := newModel(t, provider, "")
	start(t, m)
	press(m, "2")

	stale := m.controller.Ticket(view.Ocean)
	oldGate := m.gate

	_, cmd := press(m, "ctrl+o")
	msgs := run(cmd)
	if len(msgs) != 1 {
		t.Fatalf("sign-out produced %d messages", len(msgs))
	}

	next, _ := m.Update(msgs[0])
	fresh, ok := next.(*Model)
	if !ok || fresh == m {
		t.Fatal("sign-out did not rebuild the console")
	}
	t.Cleanup(fresh.gate.Close)

	if fresh.gate == oldGate {
		t.Error("restart reused the old gate")
	}
	if provider.SignOuts() != 1 {
		t.Errorf("SignOuts() = %d, want 1", provider.SignOuts())
	}

	fresh.Update(splash.TickMsg{})
	settle(t, fresh)

	if got := fresh.visible(); got != loginPage {
		t.Errorf("visible() = %v, want login page", got)
	}
	if fresh.identity != nil {
		t.Errorf("identity = %+v survived sign-out", fresh.identity)
	}
	if fresh.board.Has(ocean.FieldStatus) || fresh.controller.Rendered(view.Ocean) {
		t.Error("view state survived sign-out")
	}
	if fresh.controller.Valid(stale) {
		t.Error("ticket from before sign-out is still valid")
	}

	// late auth messages from the old gate are ignored
	fresh.Update(authChangedMsg{gate: oldGate, identity: ranger})
	if fresh.identity != nil {
		t.Error("old gate message applied after restart")
	}
}

func TestModel_SignOutFailureKeepsSession(t *testing.T) {
	t.Parallel()

	provider := sessiontest.New(ranger)
	provider.SignOutErr = xerrors.Auth(xerrors.WithMessage("network down"))
	m := newModel(t, provider, "")
	start(t, m)

	_, cmd := press(m, "ctrl+o")
	next, _ := m.Update(run(cmd)[0])

	if next != m {
		t.Fatal("failed sign-out restarted the console")
	}
	if m.visible() != appPage {
		t.Errorf("visible() = %v, want app page", m.visible())
	}
}

func TestModel_SurfaceRetry(t *testing.T) {
	t.Parallel()

	t.Run("gives up after max attempts", func(t *testing.T) {
		t.Parallel()

		m := newModel(t, sessiontest.New(ranger), "")
		if cmd := settle(t, m); cmd == nil {
			t.Fatal("expected a retry to be scheduled")
		}

		for attempt := 1; attempt < 8; attempt++ {
			_, cmd := m.Update(surfaceRetryMsg{gate: m.gate, seq: m.authSeq, identity: ranger, attempt: attempt})
			if cmd == nil {
				t.Fatalf("attempt %d: no retry scheduled", attempt)
			}
		}
		m.Update(surfaceRetryMsg{gate: m.gate, seq: m.authSeq, identity: ranger, attempt: 8})

		if got := m.visible(); got != fatalPage {
			t.Fatalf("visible() = %v, want fatal page", got)
		}
		if !xerrors.IsKind(m.err, xerrors.KindSurface) {
			t.Errorf("err = %v, want surface error", m.err)
		}
	})

	t.Run("attaches once the terminal is sized", func(t *testing.T) {
		t.Parallel()

		m := newModel(t, sessiontest.New(ranger), "")
		settle(t, m)

		m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		m.Update(splash.TickMsg{})
		m.Update(surfaceRetryMsg{gate: m.gate, seq: m.authSeq, identity: ranger, attempt: 1})

		if got := m.visible(); got != appPage {
			t.Fatalf("visible() = %v, want app page", got)
		}
		if !m.controller.IsActive(view.Dashboard) {
			t.Error("dashboard not active")
		}
	})
}

func TestModel_SurfaceRetrySupersededByNewerTransition(t *testing.T) {
	t.Parallel()

	m := newModel(t, sessiontest.New(ranger), "")

	// signed in before the terminal reports a size; the first retry
	// schedules a second one under the same transition
	first := settle(t, m)()
	_, staleCmd := m.Update(first)
	if staleCmd == nil {
		t.Fatal("expected a second retry to be scheduled")
	}

	// signed out before any retry could attach
	m.Update(authChangedMsg{gate: m.gate, identity: nil})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(splash.TickMsg{})
	m.Update(surfaceRetryMsg{gate: m.gate, seq: m.authSeq, identity: nil, attempt: 1})
	if got := m.visible(); got != loginPage {
		t.Fatalf("visible() = %v, want login page", got)
	}

	stale, ok := staleCmd().(surfaceRetryMsg)
	if !ok {
		t.Fatal("stale command did not produce a surface retry")
	}
	if stale.identity != ranger {
		t.Fatalf("stale retry identity = %v, want signed-in identity", stale.identity)
	}
	m.Update(stale)

	if got := m.visible(); got != loginPage {
		t.Errorf("visible() = %v after superseded retry, want login page", got)
	}
	if m.identity != nil {
		t.Errorf("identity = %v, want nil", m.identity)
	}
	if m.navReady {
		t.Error("views mounted by a superseded retry")
	}
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want view.ID
	}{
		{name: "number keys", keys: []string{"3"}, want: view.Nature},
		{name: "tab cycles", keys: []string{"tab", "tab"}, want: view.Nature},
		{name: "tab wraps", keys: []string{"4", "tab"}, want: view.Dashboard},
		{name: "settings from header", keys: []string{"s"}, want: view.Settings},
		{name: "esc leaves settings", keys: []string{"s", "esc"}, want: view.Dashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newModel(t, sessiontest.New(ranger), "")
			start(t, m)

			for _, key := range tt.keys {
				press(m, key)
			}

			got, ok := m.controller.Active()
			if !ok || got != tt.want {
				t.Errorf("Active() = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
}

func TestModel_SettingsCapturesPhoneInput(t *testing.T) {
	t.Parallel()

	m := newModel(t, sessiontest.New(ranger), "")
	start(t, m)

	press(m, "s")
	press(m, "right")
	press(m, "right")
	if m.state.settings.Tab != settings.TabNotifications {
		t.Fatalf("tab = %v, want notifications", m.state.settings.Tab)
	}

	for _, key := range []string{"+", "2", "5", "4"} {
		press(m, key)
	}
	if !m.controller.IsActive(view.Settings) {
		t.Fatal("digits navigated away from the phone field")
	}
	if got := m.state.settings.Phone.Value(); got != "+254" {
		t.Errorf("phone = %q, want +254", got)
	}

	press(m, "enter")
	if m.state.settings.Notice != settings.SavedNotice {
		t.Errorf("notice = %q, want %q", m.state.settings.Notice, settings.SavedNotice)
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m := newModel(t, sessiontest.New(ranger), "")
	start(t, m)

	got := m.appView()
	for _, want := range []string{"EARTH", ranger.Email, "DASHBOARD", "ANALYZING"} {
		if !strings.Contains(got, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
