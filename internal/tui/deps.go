package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/garrettladley/earth/internal/config"
	"github.com/garrettladley/earth/internal/session"
)

type Deps struct {
	Ctx          context.Context
	Logger       *slog.Logger
	Provider     session.Provider
	APIURL       string
	FetchTimeout time.Duration
	Location     config.Location
	Backoff      session.Backoff
}
