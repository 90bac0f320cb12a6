package staging

import (
	"testing"
)

// TestDefaultSentinelSet spot-checks the production sentinel values and
// their case sensitivity.
func TestDefaultSentinelSet(t *testing.T) {
	s := DefaultSentinelSet()

	for _, member := range []string{"None", "none", "no", "No", "", " ", "null", "noo", "nm", "Np"} {
		if !s.Contains(member) {
			t.Errorf("expected %q to be a sentinel", member)
		}
	}
	for _, nonMember := range []string{"NONE", "NULL", "Yes", "VHDL", "  ", "0"} {
		if s.Contains(nonMember) {
			t.Errorf("did not expect %q to be a sentinel", nonMember)
		}
	}
}

// TestNewSentinelSetDoesNotAliasInput tests immutability against the
// constructor's argument slice.
func TestNewSentinelSetDoesNotAliasInput(t *testing.T) {
	values := []string{"skip"}
	s := NewSentinelSet(values...)
	values[0] = "changed"

	if !s.Contains("skip") {
		t.Error("set lost its member after caller mutation")
	}
	if s.Contains("changed") {
		t.Error("set aliased the caller's slice")
	}
}
