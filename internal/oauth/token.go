package oauth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/garrettladley/earth/internal/db"
)

const idTokenKey = "id_token"

type TokenChecker interface {
	HasToken(ctx context.Context) (bool, error)
}

var (
	_ TokenChecker       = (*DBTokenSource)(nil)
	_ oauth2.TokenSource = (*DBTokenSource)(nil)
)

// DBTokenSource serves the persisted token, refreshing and re-persisting it
// when it has expired.
type DBTokenSource struct {
	config  *oauth2.Config
	querier db.Querier
	mu      sync.Mutex
	token   *oauth2.Token
	email   string
}

func NewDBTokenSource(config *oauth2.Config, querier db.Querier) *DBTokenSource {
	return &DBTokenSource{
		config:  config,
		querier: querier,
	}
}

func (s *DBTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.token.Valid() {
		return s.token, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.querier.GetIdentity(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	token := rowToOAuth2(row)
	s.email = row.Email

	if token.Valid() {
		s.token = token
		return token, nil
	}

	if token.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	newToken, err := s.config.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if err := Save(ctx, s.querier, row.Email, newToken); err != nil {
		return nil, fmt.Errorf("failed to save refreshed token: %w", err)
	}

	s.token = newToken
	return newToken, nil
}

func (s *DBTokenSource) HasToken(ctx context.Context) (bool, error) {
	_, err := s.querier.GetIdentity(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Email is the address stored alongside the last loaded token.
func (s *DBTokenSource) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Forget drops the in-memory token so the next Token call goes to the store.
func (s *DBTokenSource) Forget() {
	s.mu.Lock()
	s.token = nil
	s.email = ""
	s.mu.Unlock()
}

// Save persists token for email. A missing refresh or id token keeps the
// stored one.
func Save(ctx context.Context, querier db.Querier, email string, token *oauth2.Token) error {
	params := db.UpsertIdentityParams{
		Email:       email,
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		Expiry:      token.Expiry,
	}

	if token.RefreshToken != "" {
		params.RefreshToken = &token.RefreshToken
	}
	if idToken := IDToken(token); idToken != "" {
		params.IDToken = &idToken
	}

	return querier.UpsertIdentity(ctx, params)
}

// IDToken returns the OIDC id_token carried by token, if any.
func IDToken(token *oauth2.Token) string {
	if token == nil {
		return ""
	}
	if v, ok := token.Extra(idTokenKey).(string); ok {
		return v
	}
	return ""
}

// BearerToken is what the analytics API expects: the id_token when the
// provider issued one, otherwise the access token.
func BearerToken(token *oauth2.Token) string {
	if idToken := IDToken(token); idToken != "" {
		return idToken
	}
	return token.AccessToken
}

func rowToOAuth2(row db.Identity) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken: row.AccessToken,
		TokenType:   row.TokenType,
		Expiry:      row.Expiry,
	}

	if row.RefreshToken != nil {
		token.RefreshToken = *row.RefreshToken
	}
	if row.IDToken != nil {
		token = token.WithExtra(map[string]any{idTokenKey: *row.IDToken})
	}

	return token
}
