package models

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses
const (
	RunStatusSucceeded = "succeeded"
	RunStatusPartial   = "partial"
	RunStatusFailed    = "failed"
)

// SyncRun is the audit record of one end-to-end sync: read, stage,
// upload.
type SyncRun struct {
	ID               uuid.UUID `db:"id" json:"id"`
	StartedAt        time.Time `db:"started_at" json:"started_at"`
	CompletedAt      time.Time `db:"completed_at" json:"completed_at"`
	Status           string    `db:"status" json:"status"`
	RowsRead         int       `db:"rows_read" json:"rows_read"`
	RowsStaged       int       `db:"rows_staged" json:"rows_staged"`
	RowsSkipped      int       `db:"rows_skipped" json:"rows_skipped"`
	UploadsSucceeded int       `db:"uploads_succeeded" json:"uploads_succeeded"`
	UploadsFailed    int       `db:"uploads_failed" json:"uploads_failed"`
	UploadsFlagged   int       `db:"uploads_flagged" json:"uploads_flagged"`
	Report           string    `db:"report" json:"report,omitempty"`
}

// Duration returns the wall-clock run time.
func (r *SyncRun) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
