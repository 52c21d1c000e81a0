// Package localauth implements account.IdentityProvider over PostgreSQL for
// deployments without a managed auth service (local dev, CI). Accounts get a
// bcrypt password hash at creation and HS256 JWTs as bearer tokens.
package localauth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/dalili-app/backend/pkg/account"
	"github.com/dalili-app/backend/pkg/security/jwt"
)

// Same minimum the managed provider enforces.
const minPasswordLen = 6

type Provider struct {
	pool   *pgxpool.Pool
	tokens *jwt.Generator
}

func New(pool *pgxpool.Pool, tokens *jwt.Generator) (*Provider, error) {
	p := &Provider{pool: pool, tokens: tokens}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			display_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", account.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return "", account.ErrWeakPassword
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	_, err = p.pool.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
	`, id, strings.ToLower(email), string(passwordHash), displayName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return "", account.ErrEmailTaken
		}
		return "", err
	}
	return id.String(), nil
}

func (p *Provider) LookupByEmail(ctx context.Context, email string) (string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", account.ErrInvalidEmail
	}
	row := p.pool.QueryRow(ctx, `
		SELECT id FROM accounts WHERE email = $1
	`, strings.ToLower(email))
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", account.ErrAccountNotFound
		}
		return "", err
	}
	return id.String(), nil
}

func (p *Provider) IssueToken(ctx context.Context, id string) (string, error) {
	return p.tokens.Generate(ctx, id)
}
