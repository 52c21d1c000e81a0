package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dalili-app/backend/pkg/account"
)

// ProfileRepository implements account.ProfileRepository backed by PostgreSQL (pgx).
// The row id is the identity provider's account id, not a local serial.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	repo := &ProfileRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func (r *ProfileRepository) Create(ctx context.Context, profile account.Profile) error {
	// created_at is assigned by the database, matching the document-store
	// contract of a server-side write timestamp.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, birth_date)
		VALUES ($1, $2, $3, $4)
	`, profile.ID, profile.Name, profile.Email, profile.BirthDate)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (account.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, birth_date, created_at
		FROM users WHERE id = $1
	`, id)
	var profile account.Profile
	var createdAt time.Time
	if err := row.Scan(&profile.ID, &profile.Name, &profile.Email, &profile.BirthDate, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Profile{}, account.ErrProfileNotFound
		}
		return account.Profile{}, err
	}
	createdAt = createdAt.UTC()
	profile.CreatedAt = &createdAt
	return profile, nil
}
