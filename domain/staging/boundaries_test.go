package staging

import (
	"testing"

	"skillstage/domain/core"
)

func validHeaders() []string {
	return []string{
		"Bullhorn ID", "Start Date", "Office", "Name", "Supervisor",
		"Project Role", "Education", "OEM Experience", "Work Experience",
		"Aviation", "Defense", "Space",
		"Avionics", "Aircraft Power Generation",
		"DO-178C", "ARP4754A", "Other Standards",
		"Model Based Design", "DevSecOps",
		"C", "Python", "Ada", "Other Languages",
		"MATLAB", "DOORS", "Other Tools",
	}
}

// TestResolveBoundaries tests that each boundary equals the header's
// position in the sequence.
func TestResolveBoundaries(t *testing.T) {
	headers := validHeaders()
	b, err := ResolveBoundaries(headers)
	if err != nil {
		t.Fatalf("ResolveBoundaries returned error: %v", err)
	}

	expected := map[string]int{
		HeaderWorkExperience: 8,
		HeaderSpace:          11,
		HeaderAircraftPower:  13,
		HeaderOtherStandards: 16,
		HeaderDevSecOps:      18,
		HeaderOtherLanguages: 22,
		HeaderOtherTools:     25,
	}
	got := map[string]int{
		HeaderWorkExperience: b.WorkExperience,
		HeaderSpace:          b.Space,
		HeaderAircraftPower:  b.AircraftPower,
		HeaderOtherStandards: b.OtherStandards,
		HeaderDevSecOps:      b.DevSecOps,
		HeaderOtherLanguages: b.OtherLanguages,
		HeaderOtherTools:     b.OtherTools,
	}
	for name, want := range expected {
		if got[name] != want {
			t.Errorf("boundary %q = %d, want %d", name, got[name], want)
		}
	}
	if !b.InOrder() {
		t.Error("expected boundaries to be in order")
	}
}

// TestResolveBoundariesMissingHeader tests that every missing boundary
// header is a configuration error.
func TestResolveBoundariesMissingHeader(t *testing.T) {
	required := []string{
		HeaderWorkExperience, HeaderSpace, HeaderAircraftPower,
		HeaderOtherStandards, HeaderDevSecOps, HeaderOtherLanguages,
		HeaderOtherTools,
	}

	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			headers := make([]string, 0, len(validHeaders()))
			for _, h := range validHeaders() {
				if h == missing {
					continue
				}
				headers = append(headers, h)
			}

			_, err := ResolveBoundaries(headers)
			if err == nil {
				t.Fatalf("expected error when %q is missing", missing)
			}
			if !core.IsConfigurationError(err) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

// TestResolveBoundariesDuplicateHeader tests that the first occurrence
// wins.
func TestResolveBoundariesDuplicateHeader(t *testing.T) {
	headers := append(validHeaders(), HeaderSpace)
	b, err := ResolveBoundaries(headers)
	if err != nil {
		t.Fatalf("ResolveBoundaries returned error: %v", err)
	}
	if b.Space != 11 {
		t.Errorf("Space boundary = %d, want first occurrence 11", b.Space)
	}
}

// TestBoundariesOutOfOrder tests the order probe on a header sequence
// whose zones are shuffled. Resolution itself still succeeds.
func TestBoundariesOutOfOrder(t *testing.T) {
	headers := []string{
		HeaderSpace, HeaderWorkExperience, HeaderAircraftPower,
		HeaderOtherStandards, HeaderDevSecOps, HeaderOtherLanguages,
		HeaderOtherTools,
	}
	b, err := ResolveBoundaries(headers)
	if err != nil {
		t.Fatalf("ResolveBoundaries returned error: %v", err)
	}
	if b.InOrder() {
		t.Error("expected InOrder to be false for shuffled boundaries")
	}
}
