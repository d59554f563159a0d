package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/earth/internal/oauth"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer rt.Close()

			return logout(ctx, cmd.OutOrStdout(), rt.tokens, rt.auth)
		},
	}
}

type signOuter interface {
	SignOut(ctx context.Context) error
}

// logout forgets the stored identity, or says so when there is none.
func logout(ctx context.Context, w io.Writer, tokens oauth.TokenChecker, auth signOuter) error {
	ok, err := tokens.HasToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stored identity: %w", err)
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "Not signed in.")
		return nil
	}

	if err := auth.SignOut(ctx); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	_, _ = fmt.Fprintln(w, "Signed out.")
	return nil
}
