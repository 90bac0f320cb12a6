package ports

import (
	"context"

	"skillstage/domain/staging"
)

// UploadFailure records one candidate update that the destination
// rejected.
type UploadFailure struct {
	BullhornID string
	Name       string
	Reason     string
}

// UploadSummary reports the outcome of pushing a batch of staged records.
type UploadSummary struct {
	Attempted int
	Succeeded int
	// Flagged counts records that carry a name but no destination ID and
	// therefore need a manual ID entry before they can sync.
	Flagged  int
	Ignored  int
	Failures []UploadFailure
}

// Failed returns the number of rejected updates.
func (s *UploadSummary) Failed() int {
	return len(s.Failures)
}

// CandidateUploader pushes flattened staged records to the candidate
// profile system. Implementations authenticate themselves and must
// tolerate per-record failures without aborting the batch.
type CandidateUploader interface {
	Upload(ctx context.Context, records []*staging.StagedRecord) (*UploadSummary, error)
}
