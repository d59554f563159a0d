package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) Querier {
	t.Helper()

	sqlDB, q, err := Open(t.Context(), filepath.Join(t.TempDir(), "earth.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return q
}

func TestIdentityLifecycle(t *testing.T) {
	t.Parallel()

	q := openTestDB(t)
	ctx := t.Context()

	if _, err := q.GetIdentity(ctx); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("GetIdentity() on empty db error = %v, want sql.ErrNoRows", err)
	}

	refresh := "refresh-1"
	idToken := "id-1"
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	if err := q.UpsertIdentity(ctx, UpsertIdentityParams{
		Email:        "ranger@earth.test",
		AccessToken:  "access-1",
		RefreshToken: &refresh,
		IDToken:      &idToken,
		TokenType:    "Bearer",
		Expiry:       expiry,
	}); err != nil {
		t.Fatalf("UpsertIdentity() error = %v", err)
	}

	// refresh responses omit the refresh token; the stored one must survive
	if err := q.UpsertIdentity(ctx, UpsertIdentityParams{
		Email:       "ranger@earth.test",
		AccessToken: "access-2",
		TokenType:   "Bearer",
		Expiry:      expiry,
	}); err != nil {
		t.Fatalf("UpsertIdentity() second call error = %v", err)
	}

	got, err := q.GetIdentity(ctx)
	if err != nil {
		t.Fatalf("GetIdentity() error = %v", err)
	}
	if got.AccessToken != "access-2" {
		t.Errorf("AccessToken = %q, want access-2", got.AccessToken)
	}
	if got.RefreshToken == nil || *got.RefreshToken != refresh {
		t.Errorf("RefreshToken = %v, want %q", got.RefreshToken, refresh)
	}
	if got.IDToken == nil || *got.IDToken != idToken {
		t.Errorf("IDToken = %v, want %q", got.IDToken, idToken)
	}
	if !got.Expiry.Equal(expiry) {
		t.Errorf("Expiry = %v, want %v", got.Expiry, expiry)
	}

	if err := q.DeleteIdentity(ctx); err != nil {
		t.Fatalf("DeleteIdentity() error = %v", err)
	}
	if _, err := q.GetIdentity(ctx); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetIdentity() after delete error = %v, want sql.ErrNoRows", err)
	}
}
