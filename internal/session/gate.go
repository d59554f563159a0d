package session

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("session gate closed")

// Gate turns the provider's auth notifications into a one-shot readiness
// signal plus a stream of later transitions.
//
// The first notification settles Ready. Every later one is broadcast to
// subscribers and never re-settles Ready.
type Gate struct {
	mu          sync.Mutex
	ready       chan struct{}
	done        chan struct{}
	settled     bool
	closed      bool
	first       *Identity
	current     *Identity
	subs        map[uint64]chan *Identity
	nextSub     uint64
	unsubscribe func()
}

func NewGate(provider Provider) *Gate {
	g := &Gate{
		ready: make(chan struct{}),
		done:  make(chan struct{}),
		subs:  make(map[uint64]chan *Identity),
	}
	unsubscribe := provider.OnAuthStateChanged(g.emit)

	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()

	return g
}

func (g *Gate) emit(id *Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.current = id

	if !g.settled {
		g.settled = true
		g.first = id
		close(g.ready)
		return
	}

	for _, ch := range g.subs {
		offer(ch, id)
	}
}

// offer keeps only the newest value in a one-slot channel. Callers hold g.mu,
// so there is a single sender.
func offer(ch chan *Identity, id *Identity) {
	select {
	case ch <- id:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- id
}

// Ready blocks until the first notification and returns its identity. Every
// caller sees the same value.
func (g *Gate) Ready(ctx context.Context) (*Identity, error) {
	select {
	case <-g.ready:
		return g.first, nil
	default:
	}

	select {
	case <-g.ready:
		return g.first, nil
	case <-g.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Settled reports whether Ready has resolved.
func (g *Gate) Settled() bool {
	select {
	case <-g.ready:
		return true
	default:
		return false
	}
}

// Subscribe returns a channel of transitions after readiness. A slow reader
// only ever sees the latest one. The channel is closed by cancel or Close.
func (g *Gate) Subscribe() (<-chan *Identity, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan *Identity, 1)
	if g.closed {
		close(ch)
		return ch, func() {}
	}

	id := g.nextSub
	g.nextSub++
	g.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if sub, ok := g.subs[id]; ok {
				delete(g.subs, id)
				close(sub)
			}
		})
	}
}

// Current is the most recently announced identity.
func (g *Gate) Current() *Identity {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Close detaches from the provider and ends every subscription.
func (g *Gate) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	close(g.done)
	for id, ch := range g.subs {
		delete(g.subs, id)
		close(ch)
	}
	unsubscribe := g.unsubscribe
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
