package app

import (
	"context"
	"time"

	"skillstage/domain/staging"
	"skillstage/internal"
	"skillstage/internal/errors"
	"skillstage/internal/report"
	"skillstage/models"
	"skillstage/ports"

	"github.com/google/uuid"
)

// SyncService orchestrates one end-to-end sync: read the survey, stage
// every row, push the staged records, and record the run.
type SyncService struct {
	source   ports.SurveySource
	staging  *StagingService
	uploader ports.CandidateUploader // nil skips the upload (dry run)
	runs     ports.RunRepository     // nil disables run persistence
	logger   *internal.Logger
}

// NewSyncService wires a sync service.
func NewSyncService(source ports.SurveySource, stagingService *StagingService, uploader ports.CandidateUploader, runs ports.RunRepository, logger *internal.Logger) *SyncService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SyncService{
		source:   source,
		staging:  stagingService,
		uploader: uploader,
		runs:     runs,
		logger:   logger,
	}
}

// Run executes a full sync and returns its audit record. The returned
// error is non-nil only for failures that stop the run (source or
// boundary configuration); row skips and per-record upload rejections are
// reported inside the run.
func (s *SyncService) Run(ctx context.Context) (*models.SyncRun, error) {
	run := &models.SyncRun{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}
	s.logger.Info("sync run %s starting", run.ID)

	table, err := s.source.Read(ctx)
	if err != nil {
		return s.finish(ctx, run, nil, nil, nil, errors.SourceError("failed to read survey", err))
	}
	run.RowsRead = len(table.Rows)

	outcome, err := s.staging.Stage(table)
	if err != nil {
		return s.finish(ctx, run, nil, nil, nil, errors.StagingError("staging aborted", err))
	}
	run.RowsStaged = len(outcome.Records)
	run.RowsSkipped = len(outcome.RowErrors)

	var upload *ports.UploadSummary
	if s.uploader != nil {
		upload, err = s.uploader.Upload(ctx, outcome.Records)
		if err != nil {
			return s.finish(ctx, run, outcome.Records, outcome.RowErrors, upload, errors.ExternalServiceError("bullhorn", err))
		}
		run.UploadsSucceeded = upload.Succeeded
		run.UploadsFailed = upload.Failed()
		run.UploadsFlagged = upload.Flagged
	} else {
		s.logger.Info("no uploader configured; dry run")
	}

	return s.finish(ctx, run, outcome.Records, outcome.RowErrors, upload, nil)
}

// finish stamps the run, renders its report, persists it when a
// repository is configured, and maps the terminal error.
func (s *SyncService) finish(ctx context.Context, run *models.SyncRun, records []*staging.StagedRecord, rowErrors []staging.RowError, upload *ports.UploadSummary, runErr error) (*models.SyncRun, error) {
	run.CompletedAt = time.Now().UTC()
	switch {
	case runErr != nil:
		run.Status = models.RunStatusFailed
	case len(rowErrors) > 0 || (upload != nil && upload.Failed() > 0):
		run.Status = models.RunStatusPartial
	default:
		run.Status = models.RunStatusSucceeded
	}
	run.Report = report.Markdown(run, records, rowErrors, upload)

	if s.runs != nil {
		if err := s.runs.Save(ctx, run); err != nil {
			// The sync itself already happened; losing the audit row is
			// not worth failing the run over.
			s.logger.Warn("failed to persist sync run %s: %v", run.ID, err)
		}
	}

	if runErr != nil {
		s.logger.Error("sync run %s failed: %v", run.ID, runErr)
		return run, runErr
	}
	s.logger.Info("sync run %s finished with status %s", run.ID, run.Status)
	return run, nil
}
