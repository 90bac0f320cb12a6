package ports

import (
	"context"

	"skillstage/domain/staging"
)

// SurveySource supplies the survey spreadsheet as an aligned header row
// plus data rows, with cells already rendered as strings and dates as
// YYYY-MM-DD. Retrieval details (file, blob, upload) live behind this
// interface.
type SurveySource interface {
	Read(ctx context.Context) (*staging.Table, error)
}
