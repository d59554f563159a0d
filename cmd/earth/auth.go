//go:build !release

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Sign in with Google",
		Long:  "Opens the browser to sign in with Google and stores the identity locally.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer rt.Close()

			id, err := rt.auth.SignIn(ctx)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			fmt.Printf("Signed in as %s\n", id.Email)
			return nil
		},
	}
}
