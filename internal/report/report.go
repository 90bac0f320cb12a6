// Package report renders the per-run summary handed to operators so they
// can compare a sync against the source spreadsheet.
package report

import (
	"fmt"
	"strings"

	"skillstage/domain/staging"
	"skillstage/models"
	"skillstage/ports"

	"github.com/montanaflynn/stats"
)

// BucketStat summarizes how full one category bucket is across the batch.
type BucketStat struct {
	Bucket staging.Bucket
	Mean   float64
	Median float64
	Max    int
}

// BucketStats computes fill statistics per category bucket.
func BucketStats(records []*staging.StagedRecord) []BucketStat {
	result := make([]BucketStat, 0, len(staging.CategoryBuckets))
	for _, bucket := range staging.CategoryBuckets {
		sizes := make([]float64, 0, len(records))
		max := 0
		for _, record := range records {
			n := len(record.Categories[bucket])
			sizes = append(sizes, float64(n))
			if n > max {
				max = n
			}
		}

		stat := BucketStat{Bucket: bucket, Max: max}
		if len(sizes) > 0 {
			stat.Mean, _ = stats.Mean(sizes)
			stat.Median, _ = stats.Median(sizes)
		}
		result = append(result, stat)
	}
	return result
}

// Markdown renders the run report.
func Markdown(run *models.SyncRun, records []*staging.StagedRecord, rowErrors []staging.RowError, upload *ports.UploadSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Skills Sync Run %s\n\n", run.ID)
	fmt.Fprintf(&b, "- Started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Status: %s\n", run.Status)
	fmt.Fprintf(&b, "- Rows read: %d, staged: %d, skipped: %d\n\n", run.RowsRead, run.RowsStaged, run.RowsSkipped)

	b.WriteString("## Bucket fill\n\n")
	b.WriteString("| Bucket | Mean | Median | Max |\n|---|---|---|---|\n")
	for _, stat := range BucketStats(records) {
		fmt.Fprintf(&b, "| %s | %.2f | %.1f | %d |\n", stat.Bucket, stat.Mean, stat.Median, stat.Max)
	}
	b.WriteString("\n")

	unmapped := 0
	for _, record := range records {
		if !record.Experience.Mapped {
			unmapped++
		}
	}
	fmt.Fprintf(&b, "## Work experience\n\n- Unmapped descriptors: %d of %d\n\n", unmapped, len(records))

	if len(rowErrors) > 0 {
		b.WriteString("## Skipped rows\n\n")
		for _, rowErr := range rowErrors {
			fmt.Fprintf(&b, "- row %d: %v\n", rowErr.Index, rowErr.Err)
		}
		b.WriteString("\n")
	}

	if upload != nil {
		b.WriteString("## Upload\n\n")
		fmt.Fprintf(&b, "- Attempted: %d, succeeded: %d, failed: %d\n", upload.Attempted, upload.Succeeded, upload.Failed())
		fmt.Fprintf(&b, "- Flagged (missing Bullhorn ID): %d, ignored: %d\n", upload.Flagged, upload.Ignored)
		for _, failure := range upload.Failures {
			fmt.Fprintf(&b, "- FAILED %s (%s): %s\n", failure.Name, failure.BullhornID, failure.Reason)
		}
	}

	return b.String()
}
