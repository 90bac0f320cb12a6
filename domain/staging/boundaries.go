package staging

import (
	"skillstage/domain/core"
)

// Header names that delimit the classification zones. The survey keeps
// these stable across revisions; everything else in the header row is
// free to change.
const (
	HeaderWorkExperience = "Work Experience"
	HeaderSpace          = "Space"
	HeaderAircraftPower  = "Aircraft Power Generation"
	HeaderOtherStandards = "Other Standards"
	HeaderDevSecOps      = "DevSecOps"
	HeaderOtherLanguages = "Other Languages"
	HeaderOtherTools     = "Other Tools"
)

// Boundaries holds the seven resolved column indexes that delimit the
// classification zones of a survey row.
type Boundaries struct {
	WorkExperience int
	Space          int
	AircraftPower  int
	OtherStandards int
	DevSecOps      int
	OtherLanguages int
	OtherTools     int
}

// ResolveBoundaries locates the seven boundary headers in the header row.
// The first occurrence wins when a name appears twice. A missing name is a
// configuration error: no row can be classified without it.
func ResolveBoundaries(headers []string) (Boundaries, error) {
	var b Boundaries
	targets := []struct {
		name string
		dst  *int
	}{
		{HeaderWorkExperience, &b.WorkExperience},
		{HeaderSpace, &b.Space},
		{HeaderAircraftPower, &b.AircraftPower},
		{HeaderOtherStandards, &b.OtherStandards},
		{HeaderDevSecOps, &b.DevSecOps},
		{HeaderOtherLanguages, &b.OtherLanguages},
		{HeaderOtherTools, &b.OtherTools},
	}

	for _, target := range targets {
		idx := indexOf(headers, target.name)
		if idx < 0 {
			return Boundaries{}, core.NewMissingHeaderError(target.name)
		}
		*target.dst = idx
	}
	return b, nil
}

// InOrder reports whether the boundaries appear in non-decreasing column
// order. Classification assumes this zone ordering; when it does not hold
// the rules still run but assign columns to the wrong buckets, so callers
// should surface a violation rather than fail.
func (b Boundaries) InOrder() bool {
	ordered := []int{
		b.WorkExperience,
		b.Space,
		b.AircraftPower,
		b.OtherStandards,
		b.DevSecOps,
		b.OtherLanguages,
		b.OtherTools,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i] < ordered[i-1] {
			return false
		}
	}
	return true
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}
