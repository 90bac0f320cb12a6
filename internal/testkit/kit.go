// Package testkit provides survey fixtures shaped like the production
// skills spreadsheet, for use in tests.
package testkit

import (
	"skillstage/domain/staging"
)

// SurveyHeaders returns a header row with the same zone layout as the
// production survey: basic information through "Work Experience" (index
// 8), then industry, domain, standards, skills, language, and tool
// columns, each zone closed by its boundary header.
func SurveyHeaders() []string {
	return []string{
		// basic information, indexes 0..8
		"Bullhorn ID", "Start Date", "Office", "Name", "Supervisor",
		"Project Role", "Education", "OEM Experience", "Work Experience",
		// industry experience, up to and including "Space"
		"Aviation", "Defense", "Space",
		// domains, up to and including "Aircraft Power Generation"
		"Avionics", "Aircraft Power Generation",
		// standards, "Other Standards" is free text
		"DO-178C", "ARP4754A", "Other Standards",
		// skills, up to and including "DevSecOps"
		"Model Based Design", "DevSecOps",
		// languages with proficiency levels, "Other Languages" is free text
		"C", "Python", "Ada", "Other Languages",
		// tools, "Other Tools" is free text
		"MATLAB", "DOORS", "Other Tools",
	}
}

// RowBuilder assembles one survey row positionally aligned to
// SurveyHeaders. Cells start as the empty-cell rendering "None".
type RowBuilder struct {
	headers []string
	cells   []string
}

// NewRowBuilder creates a builder over the given header row.
func NewRowBuilder(headers []string) *RowBuilder {
	cells := make([]string, len(headers))
	for i := range cells {
		cells[i] = "None"
	}
	return &RowBuilder{headers: headers, cells: cells}
}

// Set assigns the cell under the named header (first occurrence).
func (b *RowBuilder) Set(header, value string) *RowBuilder {
	for i, h := range b.headers {
		if h == header {
			b.cells[i] = value
			return b
		}
	}
	return b
}

// SetIndex assigns a cell by position.
func (b *RowBuilder) SetIndex(index int, value string) *RowBuilder {
	if index >= 0 && index < len(b.cells) {
		b.cells[index] = value
	}
	return b
}

// Build returns the assembled row.
func (b *RowBuilder) Build() []string {
	row := make([]string, len(b.cells))
	copy(row, b.cells)
	return row
}

// RespondentRow returns a fully-populated row for one plausible
// respondent.
func RespondentRow(headers []string) []string {
	return NewRowBuilder(headers).
		Set("Bullhorn ID", "12345").
		Set("Start Date", "2021-03-15").
		Set("Office", "Cedar Rapids").
		Set("Name", "Jordan Avery").
		Set("Supervisor", "Casey Lin").
		Set("Project Role", "Systems Engineer").
		Set("Education", "BSEE").
		Set("OEM Experience", "Collins, Honeywell").
		Set("Work Experience", "5 to 9").
		Set("Aviation", "Yes").
		Set("Space", "yes").
		Set("Avionics", "Yes").
		Set("DO-178C", "Yes").
		Set("Other Standards", "MIL-STD-810").
		Set("DevSecOps", "Yes").
		Set("C", "4").
		Set("Python", "3").
		Set("Other Languages", "VHDL").
		Set("MATLAB", "Yes").
		Set("Other Tools", "Simulink").
		Build()
}

// SurveyTable returns a ready-to-stage table with n copies of the
// standard respondent row.
func SurveyTable(n int) *staging.Table {
	headers := SurveyHeaders()
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, RespondentRow(headers))
	}
	return &staging.Table{Headers: headers, Rows: rows}
}
