package staging

// SentinelSet is an immutable set of cell values that mean "no answer".
// Membership is exact and case-sensitive: "None" is a sentinel, "NONE" is
// not. This asymmetry with the case-insensitive "yes" check in the
// classifier is deliberate and matched by the production spreadsheet.
type SentinelSet struct {
	members map[string]struct{}
}

// NewSentinelSet builds a set from the given values. The set does not
// alias the input slice.
func NewSentinelSet(values ...string) SentinelSet {
	members := make(map[string]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	return SentinelSet{members: members}
}

// DefaultSentinelSet returns the production sentinel values: blanks,
// the "no"/"none" misspellings seen in real survey answers, and the
// rendering of an empty cell.
func DefaultSentinelSet() SentinelSet {
	return NewSentinelSet(
		"N", "No", "NO", "Np", "no", "n", "noo", "nm",
		"none", "None", "NOne", "nOne",
		" ", "", "null",
	)
}

// Contains reports exact membership.
func (s SentinelSet) Contains(value string) bool {
	_, ok := s.members[value]
	return ok
}

// Len returns the number of sentinel values.
func (s SentinelSet) Len() int {
	return len(s.members)
}
