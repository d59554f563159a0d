package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/garrettladley/earth/internal/auth"
	"github.com/garrettladley/earth/internal/config"
	"github.com/garrettladley/earth/internal/db"
	"github.com/garrettladley/earth/internal/oauth"
	"github.com/garrettladley/earth/internal/paths"
	"github.com/garrettladley/earth/internal/xslog"
)

// app is everything a command needs to talk to the identity store and
// the analytics API.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	sqlDB   *sql.DB
	querier db.Querier
	auth    *auth.Service
	tokens  oauth.TokenChecker

	closers []io.Closer
}

// newApp loads configuration and opens the identity store. Logs go to w,
// or to the log file when w is nil.
func newApp(ctx context.Context, w io.Writer) (*app, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	locationPath, err := paths.Location()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Read(locationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	rt := &app{cfg: cfg}

	if w != nil {
		rt.logger = xslog.NewLoggerFromEnv(w)
	} else {
		logPath, err := paths.Log()
		if err != nil {
			return nil, err
		}
		logger, closer, err := xslog.NewFileLogger(logPath, xslog.FromEnv())
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		rt.logger = logger
		rt.closers = append(rt.closers, closer)
	}

	dbPath, err := paths.DB()
	if err != nil {
		rt.Close()
		return nil, err
	}
	sqlDB, querier, err := db.Open(ctx, dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	rt.sqlDB = sqlDB
	rt.querier = querier
	rt.closers = append(rt.closers, sqlDB)

	oauthCfg := oauth.NewConfig(cfg.Google)
	flow := oauth.NewBrowserFlow(oauthCfg, oauth.WithFlowLogger(rt.logger))
	tokens := oauth.NewDBTokenSource(oauthCfg, querier)
	rt.tokens = tokens
	rt.auth = auth.NewService(flow, tokens, querier, auth.WithLogger(rt.logger))

	return rt, nil
}

// Close releases resources in reverse order of acquisition.
func (rt *app) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		_ = rt.closers[i].Close()
	}
}
