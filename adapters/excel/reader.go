package excel

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"skillstage/domain/staging"

	"github.com/xuri/excelize/v2"
)

// Date layouts excelize produces for date-typed cells depending on the
// cell's number format. Anything matching one of these is normalized to
// YYYY-MM-DD before it reaches the staging core.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// emptyCell is what a blank survey cell renders to. The upload skip
// rules key on this literal, so a fully blank respondent row is ignored
// instead of posted with an empty ID.
const emptyCell = "None"

// SurveyReader reads the skills survey workbook into a staging table.
type SurveyReader struct {
	config SurveyConfig
}

// NewSurveyReader creates a reader for the configured workbook.
func NewSurveyReader(config SurveyConfig) *SurveyReader {
	return &SurveyReader{config: config}
}

// Read loads the survey sheet: row one becomes the header sequence with
// non-breaking spaces normalized to plain spaces, the remaining rows
// become data rows padded to header width with trimmed cells, blank
// cells rendered as "None", and dates rendered as YYYY-MM-DD.
func (r *SurveyReader) Read(ctx context.Context) (*staging.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("survey file not found: %s", r.config.FilePath)
	}

	start := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey workbook: %w", err)
	}
	defer f.Close()

	sheet := r.config.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q must have a header row and at least one data row", sheet)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.ReplaceAll(header, "\u00a0", " ")
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(headers) {
			log.Printf("[SurveyReader] Row %d carries %d cells for %d headers; extra cells dropped",
				i+2, len(row), len(headers))
		}
		// excelize drops trailing empty cells; pad back to header width so
		// rows stay positionally aligned.
		cells := make([]string, len(headers))
		for j := range cells {
			cells[j] = emptyCell
			if j < len(row) {
				cells[j] = normalizeCell(row[j])
			}
		}
		dataRows = append(dataRows, cells)
	}

	log.Printf("[SurveyReader] Read sheet %q in %.2fms (%d columns, %d rows)",
		sheet, float64(time.Since(start).Nanoseconds())/1e6, len(headers), len(dataRows))

	return &staging.Table{Headers: headers, Rows: dataRows}, nil
}

// normalizeCell trims the cell, renders blank cells as "None", and
// renders date-like values as YYYY-MM-DD, mirroring what the staging
// core expects from upstream.
func normalizeCell(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return emptyCell
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return trimmed
}
