//go:build !release

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/earth/internal/client/earth"
	"github.com/garrettladley/earth/internal/xslog"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Call the analytics API",
		Long:  "Fetches the flood trend and infrastructure status for the configured location.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx = xslog.WithLogger(ctx, rt.logger)

			id := rt.auth.Load(ctx)
			if id == nil {
				return errors.New("not signed in, run `earth auth` first")
			}

			client := earth.New(
				oauth2.StaticTokenSource(&oauth2.Token{AccessToken: id.Token, TokenType: "Bearer"}),
				earth.WithBaseURL(rt.cfg.APIURL),
				earth.WithTimeout(rt.cfg.FetchTimeout),
			)
			at := earth.Coordinates{
				Latitude:  rt.cfg.Location.Latitude,
				Longitude: rt.cfg.Location.Longitude,
			}

			var (
				trend  *earth.FloodTrend
				status *earth.InfraStatus
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				trend, err = client.Predict.FloodTrend(gctx, at)
				return err
			})
			g.Go(func() error {
				var err error
				status, err = client.Infra.Status(gctx, at)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("analytics request failed: %w", err)
			}

			fmt.Printf("%s (%.4f, %.4f) as %s\n", rt.cfg.Location.Name, at.Latitude, at.Longitude, id.Email)
			fmt.Printf("  next week score: %d\n", trend.Analysis.Score())
			fmt.Printf("  message:         %s\n", trend.Analysis.Message)
			fmt.Printf("  us aqi:          %.0f\n", trend.Analysis.AirQuality.USAQI())
			fmt.Printf("  power grid:      %s\n", status.PowerGridRisk)
			fmt.Printf("  road network:    %s\n", status.RoadNetworkRisk)
			fmt.Printf("  internet:        %s\n", status.InternetRisk)
			return nil
		},
	}
}
