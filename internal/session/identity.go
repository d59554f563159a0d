package session

import "context"

// Identity is the signed-in user. A nil *Identity means signed out.
type Identity struct {
	Email string
	Token string
}

// Provider is the identity provider boundary.
type Provider interface {
	// OnAuthStateChanged registers fn. fn is called asynchronously once with
	// the current state and again on every change until unsubscribe runs.
	OnAuthStateChanged(fn func(*Identity)) (unsubscribe func())
	SignIn(ctx context.Context) (*Identity, error)
	SignOut(ctx context.Context) error
}
