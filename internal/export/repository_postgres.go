package export

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *Export) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = StatusPending
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO buying_exports (id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, e.ID, e.UserID, e.Status).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Export, error) {
	var e Export
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, url, error, created_at, updated_at
		FROM buying_exports
		WHERE id = $1
	`, id).Scan(&e.ID, &e.UserID, &e.Status, &e.URL, &e.Error, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) ClaimPending(ctx context.Context) (*Export, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var e Export
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, created_at
		FROM buying_exports
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&e.ID, &e.UserID, &e.CreatedAt)

	// nothing pending
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		UPDATE buying_exports
		SET status = 'PROCESSING', updated_at = now()
		WHERE id = $1
		RETURNING status, updated_at
	`, e.ID).Scan(&e.Status, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) MarkDone(ctx context.Context, id, url string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE buying_exports
		SET status = 'DONE',
		    url = $1,
		    error = NULL,
		    updated_at = now()
		WHERE id = $2
	`, url, id)
	return err
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE buying_exports
		SET status = 'FAILED',
		    error = $1,
		    updated_at = now()
		WHERE id = $2
	`, reason, id)
	return err
}
