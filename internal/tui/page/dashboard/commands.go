package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/tui/view"
	"github.com/garrettladley/earth/internal/xerrors"
)

// PredictionMsg and InfraMsg carry the ticket of the activation that asked
// for them so late results can be dropped.
type PredictionMsg struct {
	Ticket view.Ticket
	Trend  *earth.FloodTrend
	Err    error
}

type InfraMsg struct {
	Ticket view.Ticket
	Status *earth.InfraStatus
	Err    error
}

func FetchPredictionCmd(ctx context.Context, svc earth.PredictService, at earth.Coordinates, ticket view.Ticket, timeout time.Duration) tea.Cmd {
	if svc == nil {
		return func() tea.Msg {
			return PredictionMsg{Ticket: ticket, Err: xerrors.Fetch(xerrors.WithMessage("no api client"))}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		trend, err := svc.FloodTrend(ctx, at)
		if err != nil {
			return PredictionMsg{Ticket: ticket, Err: xerrors.Fetch(xerrors.WithMessage("flood trend"), xerrors.WithCause(err))}
		}
		return PredictionMsg{Ticket: ticket, Trend: trend}
	}
}

func FetchInfraCmd(ctx context.Context, svc earth.InfraService, at earth.Coordinates, ticket view.Ticket, timeout time.Duration) tea.Cmd {
	if svc == nil {
		return func() tea.Msg {
			return InfraMsg{Ticket: ticket, Err: xerrors.Fetch(xerrors.WithMessage("no api client"))}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		status, err := svc.Status(ctx, at)
		if err != nil {
			return InfraMsg{Ticket: ticket, Err: xerrors.Fetch(xerrors.WithMessage("infra status"), xerrors.WithCause(err))}
		}
		return InfraMsg{Ticket: ticket, Status: status}
	}
}
