package combine

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"promptpack/pkg/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeFile is an in-memory FileHandle with controllable latency and failure.
type fakeFile struct {
	path    string
	content string
	err     error
	delay   time.Duration
	panics  bool
	reads   atomic.Int32
}

func (f *fakeFile) FullPath() string { return f.path }

func (f *fakeFile) ReadText() (string, error) {
	f.reads.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panics {
		panic("boom")
	}
	return f.content, f.err
}

func handles(files ...*fakeFile) []FileHandle {
	out := make([]FileHandle, len(files))
	for i, f := range files {
		out[i] = f
	}
	return out
}

func newObservedPipeline() (*Pipeline, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewPipeline(zap.New(core)), logs
}

func TestAggregateFormatsBlocksInOrder(t *testing.T) {
	files := handles(
		&fakeFile{path: "proj/a.txt", content: "X"},
		&fakeFile{path: "proj/b.txt", content: "Y"},
	)

	got := Aggregate(files, patterns.NewPatternSet(), patterns.Exclude)

	want := "File: proj/a.txt\n\n```\nX\n```\n\nFile: proj/b.txt\n\n```\nY\n```"
	assert.Equal(t, want, got)
}

func TestAggregateIncludeOnlyExactPath(t *testing.T) {
	files := handles(
		&fakeFile{path: "proj/a.txt", content: "X"},
		&fakeFile{path: "proj/b.txt", content: "Y"},
	)

	// Relative paths have the root segment stripped, so "a.txt" selects the file.
	res := NewPipeline(nil).Aggregate(files, patterns.NewPatternSet("a.txt"), patterns.IncludeOnly)
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "File: proj/a.txt\n\n```\nX\n```", res.Prompt)
	assert.Equal(t, []string{"a.txt"}, res.Included)

	// "proj/a.txt" names a path that includes the root, so nothing matches.
	res = NewPipeline(nil).Aggregate(files, patterns.NewPatternSet("proj/a.txt"), patterns.IncludeOnly)
	assert.Equal(t, StatusNoMatches, res.Status)
}

func TestAggregatePreservesInputOrderUnderReverseCompletion(t *testing.T) {
	const n = 8
	fs := make([]*fakeFile, n)
	for i := range fs {
		fs[i] = &fakeFile{
			path:    "root/f" + string(rune('a'+i)) + ".txt",
			content: string(rune('A' + i)),
			delay:   time.Duration(n-i) * 10 * time.Millisecond,
		}
	}

	res := NewPipeline(nil).Aggregate(handles(fs...), patterns.NewPatternSet(), patterns.Exclude)
	require.Equal(t, StatusOK, res.Status)

	last := -1
	for i := range fs {
		idx := strings.Index(res.Prompt, "File: "+fs[i].path)
		require.GreaterOrEqual(t, idx, 0, fs[i].path)
		assert.Greater(t, idx, last, "block %d out of order", i)
		last = idx
	}
}

func TestAggregateReadsConcurrently(t *testing.T) {
	const n = 20
	fs := make([]*fakeFile, n)
	for i := range fs {
		fs[i] = &fakeFile{path: "root/file" + string(rune('a'+i)), content: "x", delay: 100 * time.Millisecond}
	}

	start := time.Now()
	res := NewPipeline(nil).Aggregate(handles(fs...), patterns.NewPatternSet(), patterns.Exclude)
	elapsed := time.Since(start)

	assert.Equal(t, n, res.Stats.Emitted)
	assert.Less(t, elapsed, time.Duration(n)*100*time.Millisecond/2)
	for _, f := range fs {
		assert.Equal(t, int32(1), f.reads.Load(), f.path)
	}
}

func TestAggregateBinaryContentDropped(t *testing.T) {
	p, logs := newObservedPipeline()
	files := handles(
		&fakeFile{path: "proj/bin.dat", content: "a\x00b"},
		&fakeFile{path: "proj/ok.txt", content: "fine"},
	)

	res := p.Aggregate(files, patterns.NewPatternSet(), patterns.Exclude)

	require.Equal(t, StatusOK, res.Status)
	assert.NotContains(t, res.Prompt, "bin.dat")
	assert.Equal(t, "File: proj/ok.txt\n\n```\nfine\n```", res.Prompt)
	assert.Equal(t, 2, res.Stats.Kept)
	assert.Equal(t, 1, res.Stats.Binary)
	assert.Equal(t, 1, logs.FilterMessage("Ignoring binary file").Len())
}

func TestAggregateReadFailureIsIsolated(t *testing.T) {
	p, logs := newObservedPipeline()
	files := handles(
		&fakeFile{path: "proj/a.txt", content: "A"},
		&fakeFile{path: "proj/locked.txt", err: errors.New("permission denied")},
		&fakeFile{path: "proj/crash.txt", panics: true},
		&fakeFile{path: "proj/c.txt", content: "C", delay: 20 * time.Millisecond},
	)

	res := p.Aggregate(files, patterns.NewPatternSet(), patterns.Exclude)

	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "File: proj/a.txt\n\n```\nA\n```\n\nFile: proj/c.txt\n\n```\nC\n```", res.Prompt)
	assert.Equal(t, 4, res.Stats.Kept)
	assert.Equal(t, 2, res.Stats.Failed)
	assert.Equal(t, 2, res.Stats.Emitted)
	assert.Equal(t, 2, logs.FilterMessage("Error reading file").Len())
}

func TestAggregateNoInputFiles(t *testing.T) {
	res := NewPipeline(nil).Aggregate(nil, patterns.NewPatternSet(), patterns.Exclude)
	assert.Equal(t, StatusNoInputFiles, res.Status)
	assert.Zero(t, res.Stats)
	assert.Empty(t, res.Prompt)
}

func TestAggregateAllFilteredOut(t *testing.T) {
	p, logs := newObservedPipeline()
	a := &fakeFile{path: "proj/a.txt", content: "A"}
	b := &fakeFile{path: "proj/b.txt", content: "B"}

	res := p.Aggregate(handles(a, b), patterns.NewPatternSet(".txt"), patterns.Exclude)

	assert.Equal(t, StatusNoMatches, res.Status)
	assert.Empty(t, res.Prompt)
	assert.Equal(t, 2, res.Stats.Skipped)
	assert.Zero(t, res.Stats.Kept)
	assert.Zero(t, a.reads.Load())
	assert.Zero(t, b.reads.Load())

	completed := logs.FilterMessage("Aggregation completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, int64(0), completed[0].ContextMap()["kept"])

	skips := logs.FilterMessage("Skipping file").All()
	require.Len(t, skips, 2)
	assert.Equal(t, "proj/a.txt", skips[0].ContextMap()["fullPath"])
	assert.Equal(t, ".txt", skips[0].ContextMap()["pattern"])
}

func TestAggregateIncludeOnlyEmptySetKeepsNothing(t *testing.T) {
	res := NewPipeline(nil).Aggregate(handles(&fakeFile{path: "proj/a.txt", content: "A"}),
		patterns.NewPatternSet(), patterns.IncludeOnly)
	assert.Equal(t, StatusNoMatches, res.Status)
}

func TestAggregateOnlyBinaryIsNoMatch(t *testing.T) {
	res := NewPipeline(nil).Aggregate(handles(&fakeFile{path: "proj/x.bin", content: "\x00"}),
		patterns.NewPatternSet(), patterns.Exclude)
	assert.Equal(t, StatusNoMatches, res.Status)
	assert.Empty(t, res.Prompt)
}

func TestAggregateDirectoryPattern(t *testing.T) {
	files := handles(
		&fakeFile{path: "app/build/out.txt", content: "generated"},
		&fakeFile{path: "app/buildx/out.txt", content: "kept"},
		&fakeFile{path: "app/src/build/x.js", content: "nested"},
	)

	res := NewPipeline(nil).Aggregate(files, patterns.NewPatternSet("build/"), patterns.Exclude)

	assert.Equal(t, []string{"buildx/out.txt", "src/build/x.js"}, res.Included)
	assert.NotContains(t, res.Prompt, "generated")
}

func TestRelativePath(t *testing.T) {
	assert.Equal(t, "proj", rootSegment("proj/src/a.go"))
	assert.Equal(t, "solo", rootSegment("solo"))
	assert.Equal(t, "src/a.go", relativePath("proj/src/a.go", "proj"))
	assert.Equal(t, "", relativePath("proj", "proj"))
	assert.Equal(t, "", relativePath("proj/", "proj"))
}

func TestAggregateIncludeOnlySkipHasNoPattern(t *testing.T) {
	p, logs := newObservedPipeline()

	res := p.Aggregate(handles(&fakeFile{path: "proj/a.txt", content: "A"}),
		patterns.NewPatternSet("b.txt"), patterns.IncludeOnly)
	assert.Equal(t, StatusNoMatches, res.Status)

	skips := logs.FilterMessage("Skipping file").All()
	require.Len(t, skips, 1)
	assert.NotContains(t, skips[0].ContextMap(), "pattern")
}
