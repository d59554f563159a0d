// Package sessiontest provides an in-memory identity provider for tests.
package sessiontest

import (
	"context"
	"sync"

	"github.com/garrettladley/earth/internal/session"
)

var _ session.Provider = (*Provider)(nil)

// Provider announces whatever identity it is told to. SignIn and SignOut
// behave like a real provider: they notify every listener.
type Provider struct {
	mu        sync.Mutex
	current   *session.Identity
	listeners map[int]func(*session.Identity)
	next      int

	SignInIdentity *session.Identity
	SignInErr      error
	SignOutErr     error

	signIns  int
	signOuts int
}

func New(initial *session.Identity) *Provider {
	return &Provider{
		current:   initial,
		listeners: make(map[int]func(*session.Identity)),
	}
}

func (p *Provider) OnAuthStateChanged(fn func(*session.Identity)) func() {
	p.mu.Lock()
	id := p.next
	p.next++
	p.listeners[id] = fn
	current := p.current
	p.mu.Unlock()

	go fn(current)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Provider) SignIn(context.Context) (*session.Identity, error) {
	p.mu.Lock()
	p.signIns++
	id, err := p.SignInIdentity, p.SignInErr
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}
	p.Emit(id)
	return id, nil
}

func (p *Provider) SignOut(context.Context) error {
	p.mu.Lock()
	p.signOuts++
	err := p.SignOutErr
	p.mu.Unlock()

	if err != nil {
		return err
	}
	p.Emit(nil)
	return nil
}

// Emit sets the current identity and notifies listeners synchronously.
func (p *Provider) Emit(id *session.Identity) {
	p.mu.Lock()
	p.current = id
	fns := make([]func(*session.Identity), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}

func (p *Provider) Current() *session.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Provider) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

func (p *Provider) SignIns() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.signIns
}

func (p *Provider) SignOuts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.signOuts
}
