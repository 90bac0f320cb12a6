package staging

import (
	"strings"

	"skillstage/domain/core"
)

// ruleInput carries one cell plus the read-only classification context.
type ruleInput struct {
	index      int
	value      string
	header     string
	boundaries Boundaries
	sentinels  SentinelSet
}

// classificationRule assigns a cell to a bucket. match returns the value
// to append and true on a hit; an empty value with ok=true means the rule
// claimed the cell but contributes nothing (omission).
type classificationRule struct {
	name   string
	bucket Bucket
	match  func(in ruleInput) (string, bool)
}

func isYes(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "yes")
}

// classificationRules is the ordered rule table. Evaluation is strictly
// top-to-bottom with first-match-wins, which is what resolves the
// overlapping column ranges: a "yes" at the Space boundary belongs to
// Industry Experience, never Domains, because the industry rule runs
// first. Reordering these rules changes bucket assignment.
var classificationRules = []classificationRule{
	{
		name:   "basic-information",
		bucket: BucketBasicInformation,
		match: func(in ruleInput) (string, bool) {
			if in.index <= in.boundaries.WorkExperience {
				return in.value, true
			}
			return "", false
		},
	},
	{
		name:   "industry-experience",
		bucket: BucketIndustryExperience,
		match: func(in ruleInput) (string, bool) {
			if in.index <= in.boundaries.Space && isYes(in.value) {
				return in.header, true
			}
			return "", false
		},
	},
	{
		name:   "domains",
		bucket: BucketDomains,
		match: func(in ruleInput) (string, bool) {
			if in.index <= in.boundaries.AircraftPower && isYes(in.value) {
				return in.header, true
			}
			return "", false
		},
	},
	{
		name:   "standards",
		bucket: BucketStandards,
		match: func(in ruleInput) (string, bool) {
			if in.index < in.boundaries.OtherStandards && isYes(in.value) {
				return in.header, true
			}
			return "", false
		},
	},
	{
		name:   "other-standards",
		bucket: BucketStandards,
		match: func(in ruleInput) (string, bool) {
			if in.index == in.boundaries.OtherStandards && !in.sentinels.Contains(in.value) {
				return in.value, true
			}
			return "", false
		},
	},
	{
		name:   "skills",
		bucket: BucketSkills,
		match: func(in ruleInput) (string, bool) {
			if in.index <= in.boundaries.DevSecOps && isYes(in.value) {
				return in.header, true
			}
			return "", false
		},
	},
	{
		name:   "language-level",
		bucket: BucketLanguages,
		match: func(in ruleInput) (string, bool) {
			if in.index < in.boundaries.OtherLanguages && isLevelCode(strings.TrimSpace(in.value)) {
				// Encoder may still omit the cell when the raw value is a
				// sentinel that trims to a level code.
				return EncodeLanguageLevel(in.header, in.value, in.sentinels), true
			}
			return "", false
		},
	},
	{
		name:   "other-languages",
		bucket: BucketLanguages,
		match: func(in ruleInput) (string, bool) {
			if in.index == in.boundaries.OtherLanguages && !in.sentinels.Contains(in.value) {
				return in.value, true
			}
			return "", false
		},
	},
	{
		name:   "tools",
		bucket: BucketTools,
		match: func(in ruleInput) (string, bool) {
			if in.index < in.boundaries.OtherTools && isYes(in.value) {
				return in.header, true
			}
			return "", false
		},
	},
	{
		name:   "other-tools",
		bucket: BucketTools,
		match: func(in ruleInput) (string, bool) {
			if in.index == in.boundaries.OtherTools && !in.sentinels.Contains(in.value) {
				return in.value, true
			}
			return "", false
		},
	},
}

// ClassifyRow walks every column of one row and assigns each cell to at
// most one bucket via the rule table. Columns matching no rule are
// dropped: unclassified means ignored. rowIndex is only used for error
// context.
func ClassifyRow(headers []string, row []string, rowIndex int, boundaries Boundaries, sentinels SentinelSet) (*StagedRecord, error) {
	if len(row) != len(headers) {
		return nil, core.NewRowShapeError(rowIndex, len(row), len(headers))
	}

	record := NewStagedRecord()
	for i, value := range row {
		in := ruleInput{
			index:      i,
			value:      value,
			header:     headers[i],
			boundaries: boundaries,
			sentinels:  sentinels,
		}
		for _, rule := range classificationRules {
			out, ok := rule.match(in)
			if !ok {
				continue
			}
			if rule.bucket == BucketBasicInformation {
				record.BasicInformation = append(record.BasicInformation, out)
			} else if out != "" {
				record.Categories[rule.bucket] = append(record.Categories[rule.bucket], out)
			}
			break
		}
	}
	return record, nil
}
