package staging

import (
	"fmt"
	"strings"
)

// levelCodes are the proficiency answers that carry a numeric level.
// Level 1 ("aware of it") is intentionally absent: the survey treats it
// as no meaningful proficiency.
var levelCodes = map[string]struct{}{
	"2": {}, "3": {}, "4": {}, "5": {},
}

func isLevelCode(value string) bool {
	_, ok := levelCodes[value]
	return ok
}

// EncodeLanguageLevel converts one proficiency cell into its display form.
// A trimmed level code becomes "{header} (Level {value})"; a non-sentinel
// value passes through unchanged as a free-text language name; a sentinel
// yields "" meaning the cell is omitted from the bucket.
func EncodeLanguageLevel(header, value string, sentinels SentinelSet) string {
	if isLevelCode(strings.TrimSpace(value)) {
		return fmt.Sprintf("%s (Level %s)", header, value)
	}
	if !sentinels.Contains(value) {
		return value
	}
	return ""
}
