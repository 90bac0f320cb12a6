package staging

import (
	"skillstage/domain/core"
)

// ExperienceValue is the tagged result of mapping the work-experience
// descriptor. Mapped=true carries an ordinal 1..7; otherwise Raw holds
// the original descriptor unchanged and downstream consumers must treat
// the record as a data-quality flag.
type ExperienceValue struct {
	Ordinal int
	Raw     string
	Mapped  bool
}

// ExperienceMapping is the immutable ordinal table for years-of-experience
// range descriptors.
type ExperienceMapping struct {
	pairs map[string]int
}

// NewExperienceMapping copies the given table into an immutable mapping.
func NewExperienceMapping(pairs map[string]int) ExperienceMapping {
	copied := make(map[string]int, len(pairs))
	for k, v := range pairs {
		copied[k] = v
	}
	return ExperienceMapping{pairs: copied}
}

// DefaultExperienceMapping returns the production ordinal table.
func DefaultExperienceMapping() ExperienceMapping {
	return NewExperienceMapping(map[string]int{
		"0 to 4":     1,
		"5 to 9":     2,
		"10 to 14":   3,
		"15 to 19":   4,
		"20 to 24":   5,
		"25 to 29":   6,
		"30 or more": 7,
	})
}

// Lookup returns the ordinal for a descriptor.
func (m ExperienceMapping) Lookup(descriptor string) (int, bool) {
	ordinal, ok := m.pairs[descriptor]
	return ordinal, ok
}

// MapExperience resolves the descriptor at the fixed experience position
// of Basic Information. An unknown descriptor is not an error: the raw
// string is kept and Mapped stays false. A record too short to hold the
// position is a row error. rowIndex is only used for error context.
func MapExperience(record *StagedRecord, mapping ExperienceMapping, rowIndex int) error {
	if len(record.BasicInformation) <= FieldExperience {
		return core.NewShortRecordError(rowIndex, len(record.BasicInformation), FieldExperience+1)
	}
	descriptor := record.ExperienceDescriptor()
	if ordinal, ok := mapping.Lookup(descriptor); ok {
		record.Experience = ExperienceValue{Ordinal: ordinal, Raw: descriptor, Mapped: true}
	} else {
		record.Experience = ExperienceValue{Raw: descriptor}
	}
	return nil
}
