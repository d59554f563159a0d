package login

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/earth/internal/session"
)

type SignInResultMsg struct {
	Identity *session.Identity
	Err      error
}

func SignInCmd(ctx context.Context, provider session.Provider) tea.Cmd {
	return func() tea.Msg {
		id, err := provider.SignIn(ctx)
		return SignInResultMsg{Identity: id, Err: err}
	}
}
