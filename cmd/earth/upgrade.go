package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/earth/internal/client/github"
	"github.com/garrettladley/earth/internal/version"
)

var releaseRepo = github.Repo{Owner: "garrettladley", Name: "earth"}

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			latest, err := github.NewClient().LatestRelease(ctx, releaseRepo)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("earth is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating earth %s → %s\n", currentVersion, latest.TagName)

			if version.IsHomebrew() {
				return run(ctx, "brew", "upgrade", "earth")
			}
			if err := run(ctx, "go", "install", "github.com/garrettladley/earth/cmd/earth@latest"); err != nil {
				return err
			}
			fmt.Println("Successfully updated!")
			return nil
		},
	}
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
