package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/earth/internal/session"
	"github.com/garrettladley/earth/internal/tui"
	"github.com/garrettladley/earth/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rt, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.logger.InfoContext(ctx, "starting console",
		xslog.Version(),
		xslog.Coordinates(rt.cfg.Location.Latitude, rt.cfg.Location.Longitude),
	)

	model := tui.New(tui.Deps{
		Ctx:          ctx,
		Logger:       rt.logger,
		Provider:     rt.auth,
		APIURL:       rt.cfg.APIURL,
		FetchTimeout: rt.cfg.FetchTimeout,
		Location:     rt.cfg.Location,
		Backoff:      session.DefaultBackoff(),
	})

	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
