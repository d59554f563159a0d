// Package auth signs users in with Google and keeps the resulting identity
// in the local store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/garrettladley/earth/internal/db"
	"github.com/garrettladley/earth/internal/oauth"
	"github.com/garrettladley/earth/internal/session"
	"github.com/garrettladley/earth/internal/xhttp"
	"github.com/garrettladley/earth/internal/xslog"
)

const loadTimeout = 5 * time.Second

var _ session.Provider = (*Service)(nil)

type Service struct {
	flow        oauth.Flow
	tokens      *oauth.DBTokenSource
	querier     db.Querier
	httpClient  *http.Client
	userInfoURL string
	logger      *slog.Logger

	mu        sync.Mutex
	listeners map[uint64]func(*session.Identity)
	nextID    uint64
}

type Option func(*Service)

func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.httpClient = c }
}

// WithUserInfoURL points email lookup at a different OpenID endpoint.
func WithUserInfoURL(url string) Option {
	return func(s *Service) { s.userInfoURL = url }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(flow oauth.Flow, tokens *oauth.DBTokenSource, querier db.Querier, opts ...Option) *Service {
	s := &Service{
		flow:       flow,
		tokens:     tokens,
		querier:    querier,
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(10 * time.Second)),
		logger:     slog.Default(),
		listeners:  make(map[uint64]func(*session.Identity)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) OnAuthStateChanged(fn func(*session.Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		fn(s.Load(ctx))
	}()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Load returns the persisted identity, refreshing its token if needed, or
// nil when nobody is signed in.
func (s *Service) Load(ctx context.Context) *session.Identity {
	token, err := s.tokens.Token()
	if err != nil {
		if !errors.Is(err, oauth.ErrNoToken) {
			s.logger.WarnContext(ctx, "stored identity unusable", xslog.Error(err))
		}
		return nil
	}

	return &session.Identity{
		Email: s.tokens.Email(),
		Token: oauth.BearerToken(token),
	}
}

func (s *Service) SignIn(ctx context.Context) (*session.Identity, error) {
	token, err := s.flow.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("sign-in flow: %w", err)
	}

	info, err := oauth.FetchUserInfo(ctx, s.httpClient, s.userInfoURL, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	if err := oauth.Save(ctx, s.querier, info.Email, token); err != nil {
		return nil, fmt.Errorf("failed to save identity: %w", err)
	}
	s.tokens.Forget()

	id := &session.Identity{
		Email: info.Email,
		Token: oauth.BearerToken(token),
	}
	s.logger.InfoContext(ctx, "signed in", xslog.Email(id.Email))
	s.notify(id)

	return id, nil
}

func (s *Service) SignOut(ctx context.Context) error {
	if err := s.querier.DeleteIdentity(ctx); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	s.tokens.Forget()

	s.logger.InfoContext(ctx, "signed out")
	s.notify(nil)

	return nil
}

func (s *Service) notify(id *session.Identity) {
	s.mu.Lock()
	fns := make([]func(*session.Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}
