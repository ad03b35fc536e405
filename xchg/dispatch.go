package xchg

import (
	"os"
	"strconv"
)

// DispatchLevel represents the exchange strategy selected for this runtime.
type DispatchLevel int

const (
	// DispatchPortable indicates byte-wise block exchange only.
	DispatchPortable DispatchLevel = iota

	// DispatchWord indicates fixed-width exchanges through unaligned word
	// loads and stores (amd64, arm64).
	DispatchWord
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchWord:
		return "word"
	default:
		return "unknown"
	}
}

// currentLevel is the detected exchange level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the name of the CPU family the level was detected on,
// e.g. "amd64/sse2" or "generic".
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the exchange strategy being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable description of the detected CPU
// capability, for example "amd64/sse2", "arm64/asimd" or "generic".
func CurrentName() string {
	return currentName
}

// NoFastEnv checks if the QSORT_NO_FAST environment variable is set.
// When set, For returns the portable exchange regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoFastEnv() bool {
	val := os.Getenv("QSORT_NO_FAST")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setPortableMode() {
	currentLevel = DispatchPortable
	currentName = "generic"
}
