// Package staging converts skills-survey rows into categorized records
// ready for upload to the candidate profile system. The package is pure:
// no I/O, no shared mutable state.
package staging

// Bucket names a category in a staged record. The names double as the
// destination keys the upload side expects.
type Bucket string

const (
	BucketBasicInformation   Bucket = "Basic Information"
	BucketIndustryExperience Bucket = "Industry Experience"
	BucketDomains            Bucket = "Domains"
	BucketStandards          Bucket = "Standards"
	BucketSkills             Bucket = "Skills"
	BucketLanguages          Bucket = "Languages"
	BucketTools              Bucket = "Tools"
)

// CategoryBuckets lists the list-valued buckets in flatten order.
// Basic Information stays positional and is never flattened.
var CategoryBuckets = []Bucket{
	BucketIndustryExperience,
	BucketDomains,
	BucketStandards,
	BucketSkills,
	BucketLanguages,
	BucketTools,
}

// Fixed positions inside Basic Information, interpreted by the uploader.
const (
	FieldBullhornID    = 0
	FieldName          = 3
	FieldSupervisor    = 4
	FieldProjectRole   = 5
	FieldOEMExperience = 7
	FieldExperience    = 8
)

// Table is the input contract from the survey source: an ordered header
// row and rows positionally aligned to it, every cell already a string
// (dates rendered as YYYY-MM-DD upstream).
type Table struct {
	Headers []string
	Rows    [][]string
}

// StagedRecord is the per-respondent output. Categories hold the
// accumulated list buckets; Display is populated by Flatten; Experience
// is populated by the experience mapping.
type StagedRecord struct {
	BasicInformation []string
	Categories       map[Bucket][]string
	Display          map[Bucket]string
	Experience       ExperienceValue
}

// NewStagedRecord returns a record with empty category buckets.
func NewStagedRecord() *StagedRecord {
	categories := make(map[Bucket][]string, len(CategoryBuckets))
	for _, b := range CategoryBuckets {
		categories[b] = []string{}
	}
	return &StagedRecord{
		BasicInformation: []string{},
		Categories:       categories,
	}
}

// Flattened reports whether Flatten has already run on this record.
func (r *StagedRecord) Flattened() bool {
	return r.Display != nil
}

func (r *StagedRecord) basic(i int) string {
	if i < 0 || i >= len(r.BasicInformation) {
		return ""
	}
	return r.BasicInformation[i]
}

// BullhornID returns the destination identifier (may be the literal "None"
// when the spreadsheet has no ID entered for the respondent).
func (r *StagedRecord) BullhornID() string { return r.basic(FieldBullhornID) }

// Name returns the respondent name.
func (r *StagedRecord) Name() string { return r.basic(FieldName) }

// Supervisor returns the supervisor column value.
func (r *StagedRecord) Supervisor() string { return r.basic(FieldSupervisor) }

// ProjectRole returns the project role label.
func (r *StagedRecord) ProjectRole() string { return r.basic(FieldProjectRole) }

// OEMExperience returns the free-text OEM experience value.
func (r *StagedRecord) OEMExperience() string { return r.basic(FieldOEMExperience) }

// ExperienceDescriptor returns the raw years-of-experience range label.
func (r *StagedRecord) ExperienceDescriptor() string { return r.basic(FieldExperience) }

// RowError reports a row that was skipped during staging. Index is the
// zero-based position within the input rows.
type RowError struct {
	Index int
	Err   error
}

func (e RowError) Error() string {
	return e.Err.Error()
}

func (e RowError) Unwrap() error {
	return e.Err
}
