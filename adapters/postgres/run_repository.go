package postgres

import (
	"context"
	"database/sql"
	"errors"

	apperrors "skillstage/internal/errors"
	"skillstage/models"
	"skillstage/ports"

	"github.com/jmoiron/sqlx"
)

// RunRepositoryImpl implements RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL sync-run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// Save inserts a completed sync run
func (r *RunRepositoryImpl) Save(ctx context.Context, run *models.SyncRun) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO sync_runs (
			id, started_at, completed_at, status,
			rows_read, rows_staged, rows_skipped,
			uploads_succeeded, uploads_failed, uploads_flagged, report
		) VALUES (
			:id, :started_at, :completed_at, :status,
			:rows_read, :rows_staged, :rows_skipped,
			:uploads_succeeded, :uploads_failed, :uploads_flagged, :report
		)
	`, run)
	if err != nil {
		return apperrors.DatabaseError("failed to save sync run", err)
	}
	return nil
}

// Latest returns the most recently started sync run
func (r *RunRepositoryImpl) Latest(ctx context.Context) (*models.SyncRun, error) {
	var run models.SyncRun
	err := r.db.GetContext(ctx, &run, `
		SELECT id, started_at, completed_at, status,
		       rows_read, rows_staged, rows_skipped,
		       uploads_succeeded, uploads_failed, uploads_flagged, report
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("sync run")
	}
	if err != nil {
		return nil, apperrors.DatabaseError("failed to load latest sync run", err)
	}
	return &run, nil
}
