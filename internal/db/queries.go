package db

import (
	"context"
	"database/sql"
	"time"
)

type Identity struct {
	Email        string
	AccessToken  string
	RefreshToken *string
	IDToken      *string
	TokenType    string
	Expiry       time.Time
}

type UpsertIdentityParams struct {
	Email        string
	AccessToken  string
	RefreshToken *string
	IDToken      *string
	TokenType    string
	Expiry       time.Time
}

type Querier interface {
	// GetIdentity returns sql.ErrNoRows when nobody is signed in.
	GetIdentity(ctx context.Context) (Identity, error)
	UpsertIdentity(ctx context.Context, arg UpsertIdentityParams) error
	DeleteIdentity(ctx context.Context) error
}

type Queries struct {
	db *sql.DB
}

var _ Querier = (*Queries)(nil)

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const getIdentity = `SELECT email, access_token, refresh_token, id_token, token_type, expiry
FROM identity WHERE id = 1`

func (q *Queries) GetIdentity(ctx context.Context) (Identity, error) {
	var i Identity
	err := q.db.QueryRowContext(ctx, getIdentity).Scan(
		&i.Email,
		&i.AccessToken,
		&i.RefreshToken,
		&i.IDToken,
		&i.TokenType,
		&i.Expiry,
	)
	return i, err
}

const upsertIdentity = `INSERT INTO identity (id, email, access_token, refresh_token, id_token, token_type, expiry, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE SET
    email = excluded.email,
    access_token = excluded.access_token,
    refresh_token = COALESCE(excluded.refresh_token, identity.refresh_token),
    id_token = COALESCE(excluded.id_token, identity.id_token),
    token_type = excluded.token_type,
    expiry = excluded.expiry,
    updated_at = CURRENT_TIMESTAMP`

func (q *Queries) UpsertIdentity(ctx context.Context, arg UpsertIdentityParams) error {
	_, err := q.db.ExecContext(ctx, upsertIdentity,
		arg.Email,
		arg.AccessToken,
		arg.RefreshToken,
		arg.IDToken,
		arg.TokenType,
		arg.Expiry,
	)
	return err
}

const deleteIdentity = `DELETE FROM identity WHERE id = 1`

func (q *Queries) DeleteIdentity(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteIdentity)
	return err
}
