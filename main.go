package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"promptpack/cmd"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := cmd.Execute()
	if err != nil {
		// The no-input case has already been reported by cobra; skip the log entry.
		if !errors.Is(err, cmd.ErrNoInputFiles) {
			logger.Error("promptpack execution failed", zap.Error(err))
		}
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// syncLogger flushes the logger when stderr is a terminal or a regular file.
// Syncing a pipe or /dev/stderr fails with "invalid argument" on some platforms.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
