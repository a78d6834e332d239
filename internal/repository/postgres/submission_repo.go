package postgres

import (
	"context"
	"errors"
	"fmt"

	"stepfault-backend/internal/domain"
	"stepfault-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type submissionRepo struct {
	db *database.Postgres
}

func NewSubmissionRepository(db *database.Postgres) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, database.CommandTimeout)
	defer cancel()

	query := `
		INSERT INTO contact_submissions (name, email, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, message, status, created_at
	`
	var stored domain.Submission
	err = pool.QueryRow(ctx, query, s.Name, s.Email, s.Message, s.Status).Scan(
		&stored.ID, &stored.Name, &stored.Email, &stored.Message, &stored.Status, &stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return &stored, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, database.CommandTimeout)
	defer cancel()

	query := `
		SELECT id, name, email, message, status, created_at
		FROM contact_submissions
		WHERE id = $1
	`
	var s domain.Submission
	err = pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Message, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error, just return nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("invalid submission status: %q", status)
	}

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, database.CommandTimeout)
	defer cancel()

	query := `UPDATE contact_submissions SET status = $2 WHERE id = $1`
	tag, err := pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}
