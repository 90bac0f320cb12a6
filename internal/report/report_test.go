package report

import (
	"testing"
	"time"

	"skillstage/domain/staging"
	"skillstage/models"
	"skillstage/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithSkills(skills ...string) *staging.StagedRecord {
	record := staging.NewStagedRecord()
	record.Categories[staging.BucketSkills] = skills
	return record
}

func TestBucketStats(t *testing.T) {
	records := []*staging.StagedRecord{
		recordWithSkills("a", "b", "c", "d"),
		recordWithSkills("a", "b"),
		recordWithSkills(),
	}

	stats := BucketStats(records)
	byBucket := map[staging.Bucket]BucketStat{}
	for _, s := range stats {
		byBucket[s.Bucket] = s
	}

	skills := byBucket[staging.BucketSkills]
	assert.InDelta(t, 2.0, skills.Mean, 1e-9)
	assert.InDelta(t, 2.0, skills.Median, 1e-9)
	assert.Equal(t, 4, skills.Max)

	tools := byBucket[staging.BucketTools]
	assert.Zero(t, tools.Mean)
	assert.Equal(t, 0, tools.Max)
}

func TestMarkdown(t *testing.T) {
	run := &models.SyncRun{
		ID:          uuid.New(),
		StartedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		CompletedAt: time.Date(2026, 8, 1, 9, 0, 5, 0, time.UTC),
		Status:      models.RunStatusPartial,
		RowsRead:    3,
		RowsStaged:  2,
		RowsSkipped: 1,
	}
	records := []*staging.StagedRecord{recordWithSkills("a"), recordWithSkills()}
	rowErrors := []staging.RowError{{Index: 1, Err: assert.AnError}}
	upload := &ports.UploadSummary{
		Attempted: 2,
		Succeeded: 1,
		Flagged:   1,
		Failures: []ports.UploadFailure{
			{BullhornID: "67890", Name: "Robin Park", Reason: "status 400"},
		},
	}

	md := Markdown(run, records, rowErrors, upload)

	require.Contains(t, md, "# Skills Sync Run "+run.ID.String())
	assert.Contains(t, md, "Status: partial")
	assert.Contains(t, md, "Rows read: 3, staged: 2, skipped: 1")
	assert.Contains(t, md, "| Skills | 0.50 | 0.5 | 1 |")
	assert.Contains(t, md, "Skipped rows")
	assert.Contains(t, md, "row 1:")
	assert.Contains(t, md, "FAILED Robin Park (67890): status 400")
}

func TestMarkdownWithoutUpload(t *testing.T) {
	run := &models.SyncRun{ID: uuid.New(), StartedAt: time.Now(), Status: models.RunStatusSucceeded}
	md := Markdown(run, nil, nil, nil)
	assert.NotContains(t, md, "## Upload")
}
