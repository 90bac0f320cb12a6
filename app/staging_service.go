package app

import (
	"skillstage/domain/staging"
	"skillstage/internal"
)

// StageOutcome is the result of staging one survey table: the staged
// records in input order plus the rows that were skipped.
type StageOutcome struct {
	Records    []*staging.StagedRecord
	RowErrors  []staging.RowError
	Boundaries staging.Boundaries
}

// StagingService runs the staging pipeline: resolve boundaries once, then
// per row classify, flatten, and map the work-experience descriptor. Row
// failures are isolated; only a boundary-resolution failure aborts the
// batch.
type StagingService struct {
	sentinels staging.SentinelSet
	mapping   staging.ExperienceMapping
	logger    *internal.Logger
}

// NewStagingService creates a staging service with explicit configuration.
// Pass staging.DefaultSentinelSet() and staging.DefaultExperienceMapping()
// for production behavior.
func NewStagingService(sentinels staging.SentinelSet, mapping staging.ExperienceMapping, logger *internal.Logger) *StagingService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &StagingService{
		sentinels: sentinels,
		mapping:   mapping,
		logger:    logger,
	}
}

// Stage converts every row of the table into a flattened, experience-
// mapped record. Output order equals input order; skipped rows are
// reported in RowErrors with their input index.
func (s *StagingService) Stage(table *staging.Table) (*StageOutcome, error) {
	boundaries, err := staging.ResolveBoundaries(table.Headers)
	if err != nil {
		return nil, err
	}
	if !boundaries.InOrder() {
		// Classification still runs, but zone assignment is suspect.
		s.logger.Warn("boundary columns are out of order; bucket assignment may be wrong: %+v", boundaries)
	}

	outcome := &StageOutcome{Boundaries: boundaries}
	for i, row := range table.Rows {
		record, err := s.stageRow(table.Headers, row, i, boundaries)
		if err != nil {
			s.logger.Warn("skipping row %d: %v", i, err)
			outcome.RowErrors = append(outcome.RowErrors, staging.RowError{Index: i, Err: err})
			continue
		}
		outcome.Records = append(outcome.Records, record)
	}

	s.logger.Info("staged %d of %d rows (%d skipped)",
		len(outcome.Records), len(table.Rows), len(outcome.RowErrors))
	return outcome, nil
}

func (s *StagingService) stageRow(headers, row []string, index int, boundaries staging.Boundaries) (*staging.StagedRecord, error) {
	record, err := staging.ClassifyRow(headers, row, index, boundaries, s.sentinels)
	if err != nil {
		return nil, err
	}
	if err := staging.Flatten(record); err != nil {
		return nil, err
	}
	if err := staging.MapExperience(record, s.mapping, index); err != nil {
		return nil, err
	}
	return record, nil
}
