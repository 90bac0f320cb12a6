package migration

import (
	"context"

	"skillstage/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createSyncRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sync_runs table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sync_runs indexes")
	}
	return nil
}

func (r *MigrationRunner) createSyncRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sync_runs (
			id UUID PRIMARY KEY,
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			rows_read INTEGER NOT NULL DEFAULT 0,
			rows_staged INTEGER NOT NULL DEFAULT 0,
			rows_skipped INTEGER NOT NULL DEFAULT 0,
			uploads_succeeded INTEGER NOT NULL DEFAULT 0,
			uploads_failed INTEGER NOT NULL DEFAULT 0,
			uploads_flagged INTEGER NOT NULL DEFAULT 0,
			report TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs (started_at DESC)
	`)
	return err
}
