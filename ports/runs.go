package ports

import (
	"context"

	"skillstage/models"
)

// RunRepository persists sync-run audit records. Persistence is optional
// at the application level; a nil repository disables it.
type RunRepository interface {
	Save(ctx context.Context, run *models.SyncRun) error
	Latest(ctx context.Context) (*models.SyncRun, error)
}
