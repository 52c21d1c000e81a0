package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dalili-app/backend/pkg/medical"
)

// FormRepository implements medical.FormRepository backed by PostgreSQL (pgx).
type FormRepository struct {
	pool *pgxpool.Pool
}

func NewFormRepository(pool *pgxpool.Pool) (*FormRepository, error) {
	repo := &FormRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FormRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS forms (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			country TEXT NOT NULL,
			has_disease BOOLEAN NOT NULL DEFAULT FALSE,
			disease TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL,
			temperature TEXT NOT NULL,
			problem_nature TEXT NOT NULL,
			symptoms TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS forms_user_created_idx ON forms (user_id, created_at DESC);
	`)
	return err
}

func (r *FormRepository) Add(ctx context.Context, form medical.Form) (string, error) {
	id := uuid.New()
	// created_at comes from the database default so ordering never depends
	// on client clocks.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO forms (id, user_id, name, country, has_disease, disease, duration, temperature, problem_nature, symptoms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, form.UserID, form.Name, form.Country, form.HasDisease, form.Disease,
		form.Duration, form.Temperature, form.ProblemNature, form.Symptoms)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *FormRepository) ListByUser(ctx context.Context, userID string) ([]medical.Form, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, country, has_disease, disease, duration, temperature, problem_nature, symptoms, created_at
		FROM forms WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := make([]medical.Form, 0)
	for rows.Next() {
		var form medical.Form
		var createdAt time.Time
		if err := rows.Scan(&form.ID, &form.UserID, &form.Name, &form.Country,
			&form.HasDisease, &form.Disease, &form.Duration, &form.Temperature,
			&form.ProblemNature, &form.Symptoms, &createdAt); err != nil {
			return nil, err
		}
		createdAt = createdAt.UTC()
		form.CreatedAt = &createdAt
		forms = append(forms, form)
	}
	return forms, rows.Err()
}
