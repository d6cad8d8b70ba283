// Package combine turns a list of files into a single prompt.
//
// The Pipeline filters the files through a patterns.PatternSet, reads every
// kept file concurrently, drops binary and unreadable files, and joins one
// fenced block per remaining file in the order the files were supplied.
package combine

import (
	"strings"
	"time"

	"promptpack/pkg/patterns"

	"go.uber.org/zap"
)

// Pipeline aggregates files into a prompt. It holds no state between calls.
type Pipeline struct {
	logger *zap.Logger
}

// NewPipeline returns a Pipeline that reports diagnostics to logger.
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none is provided
	}
	return &Pipeline{logger: logger}
}

// Aggregate builds the prompt for files.
//
// The root segment is taken from the first file; every file's relative path
// is its full path without that segment. Failed reads and binary content
// contribute nothing. No error is returned: the outcome is carried by
// Result.Status.
func (p *Pipeline) Aggregate(files []FileHandle, set patterns.PatternSet, mode patterns.Mode) Result {
	if len(files) == 0 {
		p.logger.Warn("No input files")
		return Result{Status: StatusNoInputFiles}
	}

	startTime := time.Now()
	root := rootSegment(files[0].FullPath())
	p.logger.Debug("Starting aggregation",
		zap.String("root", root),
		zap.Stringer("mode", mode),
		zap.Int("files", len(files)),
		zap.Int("patterns", set.Len()))

	stats := Stats{Total: len(files)}
	jobs := make([]job, 0, len(files))
	for _, f := range files {
		fullPath := f.FullPath()
		rel := relativePath(fullPath, root)

		pat, matched := set.Match(rel, mode)
		if !patterns.Keep(matched, mode) {
			stats.Skipped++
			fields := []zap.Field{zap.String("fullPath", fullPath), zap.String("relativePath", rel)}
			if matched {
				fields = append(fields, zap.String("pattern", pat.Value))
			}
			p.logger.Debug("Skipping file", fields...)
			continue
		}
		jobs = append(jobs, job{handle: f, fullPath: fullPath, relativePath: rel})
	}
	stats.Kept = len(jobs)

	slots, binary, failed := readAll(jobs, p.logger)
	stats.Binary = int(binary)
	stats.Failed = int(failed)

	var sb strings.Builder
	var included []string
	for i, s := range slots {
		if s.outcome != outcomeText {
			continue
		}
		sb.WriteString(s.block)
		included = append(included, jobs[i].relativePath)
	}
	stats.Emitted = len(included)

	prompt := strings.TrimSpace(sb.String())
	p.logger.Info("Aggregation completed",
		zap.Int("total", stats.Total),
		zap.Int("skipped", stats.Skipped),
		zap.Int("kept", stats.Kept),
		zap.Int("emitted", stats.Emitted),
		zap.Int("binary", stats.Binary),
		zap.Int("failed", stats.Failed),
		zap.Duration("elapsed", time.Since(startTime)))

	if prompt == "" {
		return Result{Status: StatusNoMatches, Root: root, Stats: stats}
	}
	return Result{Prompt: prompt, Root: root, Status: StatusOK, Stats: stats, Included: included}
}

// Aggregate runs a Pipeline without logging and returns only the prompt.
// An empty string means no input files or no matches.
func Aggregate(files []FileHandle, set patterns.PatternSet, mode patterns.Mode) string {
	return NewPipeline(nil).Aggregate(files, set, mode).Prompt
}
