// File: pkg/combine/worker.go
package combine

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// job is a kept file waiting to be read.
type job struct {
	handle       FileHandle
	fullPath     string
	relativePath string
}

// readOutcome classifies a finished read.
type readOutcome int

const (
	outcomeText readOutcome = iota
	outcomeBinary
	outcomeFailed
)

// slot holds the result for one job; slot i belongs to job i.
type slot struct {
	block   string
	outcome readOutcome
}

// readAll starts one goroutine per job and waits for every one of them.
// Tasks never return an error, so one failed read leaves the others running.
func readAll(jobs []job, logger *zap.Logger) ([]slot, int64, int64) {
	slots := make([]slot, len(jobs))
	var binary, failed atomic.Int64

	var eg errgroup.Group
	for i := range jobs {
		eg.Go(func() error {
			slots[i] = readOne(jobs[i], logger)
			switch slots[i].outcome {
			case outcomeBinary:
				binary.Add(1)
			case outcomeFailed:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = eg.Wait()

	logger.Debug("All reads finished", zap.Int("files", len(jobs)))
	return slots, binary.Load(), failed.Load()
}

// readOne reads a single handle and turns it into a block.
func readOne(j job, logger *zap.Logger) (s slot) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Error reading file",
				zap.String("fullPath", j.fullPath),
				zap.Error(fmt.Errorf("read panicked: %v", r)))
			s = slot{outcome: outcomeFailed}
		}
	}()

	content, err := j.handle.ReadText()
	if err != nil {
		logger.Error("Error reading file", zap.String("fullPath", j.fullPath), zap.Error(err))
		return slot{outcome: outcomeFailed}
	}

	if isBinaryContent(content) {
		logger.Info("Ignoring binary file", zap.String("fullPath", j.fullPath))
		return slot{outcome: outcomeBinary}
	}

	logger.Debug("Read file",
		zap.String("fullPath", j.fullPath),
		zap.Int("contentSizeBytes", len(content)))
	return slot{block: formatBlock(j.fullPath, content), outcome: outcomeText}
}
