package patterns

// Match returns the first pattern in s that hits relativePath under mode.
func (s PatternSet) Match(relativePath string, mode Mode) (Pattern, bool) {
	for _, p := range s.patterns {
		if p.Matches(relativePath, mode) {
			return p, true
		}
	}
	return Pattern{}, false
}

// ShouldProcess reports whether relativePath survives the set under mode.
//
// In Exclude mode a path survives when no pattern matches it; an empty set
// keeps everything. In IncludeOnly mode a path survives when at least one
// pattern matches it; an empty set keeps nothing.
func (s PatternSet) ShouldProcess(relativePath string, mode Mode) bool {
	_, matched := s.Match(relativePath, mode)
	return Keep(matched, mode)
}

// Keep turns the outcome of Match into a decision for mode.
func Keep(matched bool, mode Mode) bool {
	if mode == IncludeOnly {
		return matched
	}
	return !matched
}

// ShouldProcess is the function form of PatternSet.ShouldProcess.
func ShouldProcess(relativePath string, set PatternSet, mode Mode) bool {
	return set.ShouldProcess(relativePath, mode)
}
