package staging

import (
	"strings"

	"skillstage/domain/core"
)

// listSeparator joins bucket entries into their display string.
const listSeparator = ", "

// Flatten converts every category bucket into a single comma-joined
// display string, preserving append order. Basic Information stays
// positional. Flattening an already-flattened record is an error rather
// than a silent double-join.
func Flatten(record *StagedRecord) error {
	if record.Flattened() {
		return core.ErrAlreadyFlattened
	}
	display := make(map[Bucket]string, len(CategoryBuckets))
	for _, bucket := range CategoryBuckets {
		display[bucket] = strings.Join(record.Categories[bucket], listSeparator)
	}
	record.Display = display
	return nil
}
