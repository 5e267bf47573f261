package reconcile

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// FallbackPrefix marks identifiers synthesized for unresolved names.
	FallbackPrefix = "unknown_process_"

	// FallbackBuckets is the size of the reduced hash range. Distinct names
	// can collide inside it and are then reported as one process.
	FallbackBuckets = 10000
)

// FallbackID derives a stable identifier for a display name that matched no
// definition: FallbackPrefix followed by xxhash64(name) mod FallbackBuckets.
// The value is the same across runs and platforms.
func FallbackID(name string) string {
	return FallbackPrefix + strconv.FormatUint(xxhash.Sum64String(name)%FallbackBuckets, 10)
}
