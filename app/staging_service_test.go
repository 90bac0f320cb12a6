package app

import (
	"reflect"
	"testing"

	"skillstage/domain/staging"
	"skillstage/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStagingService() *StagingService {
	return NewStagingService(staging.DefaultSentinelSet(), staging.DefaultExperienceMapping(), nil)
}

func TestStagingServiceStage(t *testing.T) {
	service := newStagingService()
	table := testkit.SurveyTable(3)

	outcome, err := service.Stage(table)
	require.NoError(t, err)
	require.Len(t, outcome.Records, 3)
	assert.Empty(t, outcome.RowErrors)

	record := outcome.Records[0]
	assert.Equal(t, "12345", record.BullhornID())
	assert.Equal(t, "Jordan Avery", record.Name())
	assert.Equal(t, "Systems Engineer", record.ProjectRole())
	assert.Equal(t, "Collins, Honeywell", record.OEMExperience())

	assert.True(t, record.Flattened())
	assert.Equal(t, "Aviation, Space", record.Display[staging.BucketIndustryExperience])
	assert.Equal(t, "DO-178C, MIL-STD-810", record.Display[staging.BucketStandards])
	assert.Equal(t, "C (Level 4), Python (Level 3), VHDL", record.Display[staging.BucketLanguages])
	assert.Equal(t, "MATLAB, Simulink", record.Display[staging.BucketTools])

	require.True(t, record.Experience.Mapped)
	assert.Equal(t, 2, record.Experience.Ordinal) // "5 to 9"
	assert.Equal(t, "5 to 9", record.Experience.Raw)
}

func TestStagingServiceMissingBoundaryAbortsBatch(t *testing.T) {
	service := newStagingService()
	table := testkit.SurveyTable(1)

	// Rename a boundary column: the whole batch must fail.
	for i, h := range table.Headers {
		if h == staging.HeaderDevSecOps {
			table.Headers[i] = "DevOps"
		}
	}

	outcome, err := service.Stage(table)
	require.Error(t, err)
	assert.Nil(t, outcome)
}

func TestStagingServiceRowErrorIsolation(t *testing.T) {
	service := newStagingService()
	headers := testkit.SurveyHeaders()
	good := testkit.RespondentRow(headers)
	short := good[:5]

	table := &staging.Table{Headers: headers, Rows: [][]string{good, short, good}}

	outcome, err := service.Stage(table)
	require.NoError(t, err)

	// The bad row is skipped and reported; the rest survive in order.
	require.Len(t, outcome.Records, 2)
	require.Len(t, outcome.RowErrors, 1)
	assert.Equal(t, 1, outcome.RowErrors[0].Index)
	assert.Equal(t, "Jordan Avery", outcome.Records[0].Name())
	assert.Equal(t, "Jordan Avery", outcome.Records[1].Name())
}

func TestStagingServiceIdempotent(t *testing.T) {
	service := newStagingService()

	first, err := service.Stage(testkit.SurveyTable(2))
	require.NoError(t, err)
	second, err := service.Stage(testkit.SurveyTable(2))
	require.NoError(t, err)

	require.Len(t, second.Records, len(first.Records))
	for i := range first.Records {
		if !reflect.DeepEqual(first.Records[i], second.Records[i]) {
			t.Errorf("record %d differs between identical pipeline runs", i)
		}
	}
}
