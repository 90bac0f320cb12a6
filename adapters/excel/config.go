package excel

// SurveyConfig configures the survey workbook source.
type SurveyConfig struct {
	FilePath  string
	SheetName string // empty selects the first sheet
}

// DefaultSurveyConfig returns a config reading the first sheet.
func DefaultSurveyConfig(filePath string) SurveyConfig {
	return SurveyConfig{FilePath: filePath}
}
