// Package patterns decides which relative paths take part in a prompt.
//
// A pattern ending in "/" is a directory pattern and matches by prefix.
// Any other pattern is a literal: in exclude mode it matches by suffix,
// so ".DS_Store" hits the file in every directory, and in include-only
// mode it must equal the path exactly.
package patterns

import "strings"

// Separator is the path separator patterns and relative paths are written with.
const Separator = "/"

// Kind tells how a Pattern is matched.
type Kind int

const (
	// LiteralPattern matches by suffix (exclude) or equality (include-only).
	LiteralPattern Kind = iota
	// DirectoryPattern matches by prefix, separator included.
	DirectoryPattern
)

func (k Kind) String() string {
	if k == DirectoryPattern {
		return "directory"
	}
	return "literal"
}

// Pattern is a single rule with its kind fixed at parse time.
type Pattern struct {
	Kind  Kind   // How the pattern is matched.
	Value string // Raw pattern text.
}

// NewPattern classifies raw by its trailing separator.
func NewPattern(raw string) Pattern {
	if strings.HasSuffix(raw, Separator) {
		return Pattern{Kind: DirectoryPattern, Value: raw}
	}
	return Pattern{Kind: LiteralPattern, Value: raw}
}

// Matches reports whether relativePath is hit by p under mode.
func (p Pattern) Matches(relativePath string, mode Mode) bool {
	if p.Kind == DirectoryPattern {
		return strings.HasPrefix(relativePath, p.Value)
	}
	if mode == IncludeOnly {
		return relativePath == p.Value
	}
	return strings.HasSuffix(relativePath, p.Value)
}

func (p Pattern) String() string { return p.Value }

// PatternSet is an immutable collection of patterns used for one filtering pass.
type PatternSet struct {
	patterns []Pattern
}

// NewPatternSet builds a set from raw pattern strings.
// Callers must drop empty strings first; see ParseLines.
func NewPatternSet(raw ...string) PatternSet {
	ps := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		ps = append(ps, NewPattern(r))
	}
	return PatternSet{patterns: ps}
}

// ParseLines splits newline-delimited pattern text and drops blank lines.
// Surviving lines are kept verbatim.
func ParseLines(text string) PatternSet {
	var raw []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		raw = append(raw, line)
	}
	return NewPatternSet(raw...)
}

// Merge returns a new set holding the patterns of s followed by those of other.
func (s PatternSet) Merge(other PatternSet) PatternSet {
	ps := make([]Pattern, 0, len(s.patterns)+len(other.patterns))
	ps = append(ps, s.patterns...)
	ps = append(ps, other.patterns...)
	return PatternSet{patterns: ps}
}

// Len returns the number of patterns in the set.
func (s PatternSet) Len() int { return len(s.patterns) }

// Strings returns the raw pattern values.
func (s PatternSet) Strings() []string {
	out := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.Value
	}
	return out
}
