package app

import (
	"context"
	"fmt"
	"testing"

	"skillstage/domain/staging"
	apperrors "skillstage/internal/errors"
	"skillstage/internal/testkit"
	"skillstage/models"
	"skillstage/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing
type MockSurveySource struct {
	mock.Mock
}

func (m *MockSurveySource) Read(ctx context.Context) (*staging.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staging.Table), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, records []*staging.StagedRecord) (*ports.UploadSummary, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.UploadSummary), args.Error(1)
}

type MockRunRepository struct {
	mock.Mock
	saved []*models.SyncRun
}

func (m *MockRunRepository) Save(ctx context.Context, run *models.SyncRun) error {
	args := m.Called(ctx, run)
	m.saved = append(m.saved, run)
	return args.Error(0)
}

func (m *MockRunRepository) Latest(ctx context.Context) (*models.SyncRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncRun), args.Error(1)
}

func TestSyncServiceRun(t *testing.T) {
	source := new(MockSurveySource)
	uploader := new(MockUploader)
	runs := new(MockRunRepository)

	source.On("Read", mock.Anything).Return(testkit.SurveyTable(2), nil)
	uploader.On("Upload", mock.Anything, mock.Anything).Return(&ports.UploadSummary{
		Attempted: 2,
		Succeeded: 2,
	}, nil)
	runs.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewSyncService(source, newStagingService(), uploader, runs, nil)
	run, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusSucceeded, run.Status)
	assert.Equal(t, 2, run.RowsRead)
	assert.Equal(t, 2, run.RowsStaged)
	assert.Equal(t, 0, run.RowsSkipped)
	assert.Equal(t, 2, run.UploadsSucceeded)
	assert.NotEmpty(t, run.Report)

	require.Len(t, runs.saved, 1)
	assert.Equal(t, run.ID, runs.saved[0].ID)

	// The uploader must receive flattened records.
	uploaded := uploader.Calls[0].Arguments.Get(1).([]*staging.StagedRecord)
	require.Len(t, uploaded, 2)
	assert.True(t, uploaded[0].Flattened())
}

func TestSyncServiceRunPartialOnRowErrors(t *testing.T) {
	headers := testkit.SurveyHeaders()
	good := testkit.RespondentRow(headers)
	table := &staging.Table{Headers: headers, Rows: [][]string{good, good[:3]}}

	source := new(MockSurveySource)
	uploader := new(MockUploader)
	source.On("Read", mock.Anything).Return(table, nil)
	uploader.On("Upload", mock.Anything, mock.Anything).Return(&ports.UploadSummary{Attempted: 1, Succeeded: 1}, nil)

	service := NewSyncService(source, newStagingService(), uploader, nil, nil)
	run, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusPartial, run.Status)
	assert.Equal(t, 1, run.RowsSkipped)
	assert.Contains(t, run.Report, "Skipped rows")
}

func TestSyncServiceRunSourceFailure(t *testing.T) {
	source := new(MockSurveySource)
	source.On("Read", mock.Anything).Return(nil, fmt.Errorf("blob unreachable"))

	service := NewSyncService(source, newStagingService(), nil, nil, nil)
	run, err := service.Run(context.Background())

	require.Error(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunStatusFailed, run.Status)
}

func TestSyncServiceRunStagingAbort(t *testing.T) {
	headers := testkit.SurveyHeaders()
	headers[18] = "Renamed Column" // boundary header gone: batch cannot stage
	table := &staging.Table{Headers: headers, Rows: [][]string{testkit.RespondentRow(testkit.SurveyHeaders())}}

	source := new(MockSurveySource)
	source.On("Read", mock.Anything).Return(table, nil)

	service := NewSyncService(source, newStagingService(), nil, nil, nil)
	run, err := service.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStagingError, apperrors.GetCode(err))
	require.NotNil(t, run)
	assert.Equal(t, models.RunStatusFailed, run.Status)
}

func TestSyncServiceDryRunSkipsUpload(t *testing.T) {
	source := new(MockSurveySource)
	source.On("Read", mock.Anything).Return(testkit.SurveyTable(1), nil)

	service := NewSyncService(source, newStagingService(), nil, nil, nil)
	run, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusSucceeded, run.Status)
	assert.Equal(t, 0, run.UploadsSucceeded)
	assert.Equal(t, 1, run.RowsStaged)
}

func TestSyncServiceSaveFailureDoesNotFailRun(t *testing.T) {
	source := new(MockSurveySource)
	runs := new(MockRunRepository)
	source.On("Read", mock.Anything).Return(testkit.SurveyTable(1), nil)
	runs.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))

	service := NewSyncService(source, newStagingService(), nil, runs, nil)
	run, err := service.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSucceeded, run.Status)
}
