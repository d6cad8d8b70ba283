// File: pkg/combine/types.go
package combine

// FileHandle is a file supplied by the caller's enumerator.
// The pipeline reads each handle at most once and never mutates it.
type FileHandle interface {
	// FullPath is the root-inclusive, "/"-separated path, e.g. "proj/src/main.go".
	FullPath() string
	// ReadText returns the full content of the file.
	ReadText() (string, error)
}

// Status tells the caller which of the outward-visible outcomes an aggregation produced.
type Status int

const (
	// StatusOK means Result.Prompt holds at least one file block.
	StatusOK Status = iota
	// StatusNoInputFiles means the file list was empty.
	StatusNoInputFiles
	// StatusNoMatches means nothing survived filtering, binary detection and reading.
	StatusNoMatches
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoInputFiles:
		return "no-input-files"
	case StatusNoMatches:
		return "no-matches"
	default:
		return "unknown"
	}
}

// Stats counts what happened to the input files.
type Stats struct {
	Total   int // Files supplied.
	Skipped int // Files rejected by the pattern set.
	Kept    int // Files read.
	Binary  int // Kept files whose content held a NUL byte.
	Failed  int // Kept files whose read failed.
	Emitted int // Files that produced a block in the prompt.
}

// Result is the outcome of one aggregation.
type Result struct {
	Prompt   string   // Trimmed prompt; empty unless Status is StatusOK.
	Root     string   // Root segment shared by the input files.
	Status   Status   // Outcome class.
	Stats    Stats    // Per-outcome counters.
	Included []string // Relative paths of emitted files, in input order.
}
