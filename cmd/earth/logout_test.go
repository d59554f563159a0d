package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type fakeTokens struct {
	ok  bool
	err error
}

func (f fakeTokens) HasToken(context.Context) (bool, error) { return f.ok, f.err }

type fakeSignOut struct {
	calls int
	err   error
}

func (f *fakeSignOut) SignOut(context.Context) error {
	f.calls++
	return f.err
}

func TestLogout(t *testing.T) {
	t.Parallel()

	errDB := errors.New("database is locked")

	tests := []struct {
		name       string
		tokens     fakeTokens
		signOutErr error
		wantOut    string
		wantCalls  int
		wantErr    error
	}{
		{name: "signed in", tokens: fakeTokens{ok: true}, wantOut: "Signed out.\n", wantCalls: 1},
		{name: "not signed in", tokens: fakeTokens{}, wantOut: "Not signed in.\n"},
		{name: "store unreadable", tokens: fakeTokens{err: errDB}, wantErr: errDB},
		{name: "sign-out fails", tokens: fakeTokens{ok: true}, signOutErr: errDB, wantCalls: 1, wantErr: errDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			auth := &fakeSignOut{err: tt.signOutErr}

			err := logout(t.Context(), &out, tt.tokens, auth)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("logout() error = %v, want %v", err, tt.wantErr)
			}
			if got := out.String(); got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
			if auth.calls != tt.wantCalls {
				t.Errorf("SignOut calls = %d, want %d", auth.calls, tt.wantCalls)
			}
		})
	}
}
