package patterns

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for text that names no Mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode determines the polarity of a PatternSet.
type Mode int

const (
	// Exclude treats the patterns as a deny-list; everything else is kept.
	Exclude Mode = iota
	// IncludeOnly treats the patterns as an exhaustive allow-list.
	IncludeOnly
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case Exclude:
		return "exclude"
	case IncludeOnly:
		return "include-only"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a user-facing mode name into a Mode.
// "ignore" is accepted as an alias of "exclude" and "include" as an alias of "include-only".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exclude", "ignore":
		return Exclude, nil
	case "include", "include-only", "includeonly":
		return IncludeOnly, nil
	default:
		return Exclude, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
