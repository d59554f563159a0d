package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/earth/internal/session"
	"github.com/garrettladley/earth/internal/tui/page/splash"
)

func splashTickCmd() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return splash.TickMsg{}
	})
}

func waitReadyCmd(ctx context.Context, gate *session.Gate) tea.Cmd {
	return func() tea.Msg {
		id, err := gate.Ready(ctx)
		return gateReadyMsg{gate: gate, identity: id, err: err}
	}
}

// listenTransitionsCmd waits for one transition. The handler re-issues it
// to keep listening.
func listenTransitionsCmd(gate *session.Gate, ch <-chan *session.Identity) tea.Cmd {
	return func() tea.Msg {
		id, ok := <-ch
		if !ok {
			return transitionsClosedMsg{gate: gate}
		}
		return authChangedMsg{gate: gate, identity: id}
	}
}

func surfaceRetryCmd(gate *session.Gate, seq uint64, id *session.Identity, attempt int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return surfaceRetryMsg{gate: gate, seq: seq, identity: id, attempt: attempt}
	})
}

func signOutCmd(ctx context.Context, provider session.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return signedOutMsg{err: provider.SignOut(ctx)}
	}
}
