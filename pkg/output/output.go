// File: pkg/output/output.go
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrClipboard wraps failures to copy the prompt to the system clipboard.
var ErrClipboard = errors.New("failed to copy to clipboard")

// Writer delivers a finished prompt to its destination.
type Writer struct {
	Stdout    io.Writer
	Fs        afero.Fs
	Clipboard func(string) error
	Logger    *zap.Logger
}

// NewWriter returns a Writer for the real stdout, filesystem and clipboard.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		Stdout:    os.Stdout,
		Fs:        afero.NewOsFs(),
		Clipboard: clipboard.WriteAll,
		Logger:    logger,
	}
}

// Deliver writes prompt to dest ("-" or "" for stdout, a file path otherwise)
// and copies it to the clipboard when copyPrompt is set.
func (w *Writer) Deliver(prompt, dest string, copyPrompt bool) error {
	if dest == "" || dest == "-" {
		if err := w.writeStdout(prompt); err != nil {
			return err
		}
	} else if err := w.writeFile(dest, prompt); err != nil {
		return err
	}

	if copyPrompt {
		if err := w.Clipboard(prompt); err != nil {
			w.Logger.Warn("Failed to copy prompt to clipboard", zap.Error(err))
			return fmt.Errorf("%w: %w", ErrClipboard, err)
		}
		w.Logger.Info("Copied prompt to clipboard", zap.String("size", humanize.Bytes(uint64(len(prompt)))))
	}
	return nil
}

func (w *Writer) writeStdout(prompt string) error {
	writer := bufio.NewWriter(w.Stdout)
	if _, err := writer.WriteString(prompt + "\n"); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func (w *Writer) writeFile(path, prompt string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.Fs.MkdirAll(dir, 0o755); err != nil {
			w.Logger.Error("Failed to create directory", zap.String("path", dir), zap.Error(err))
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := afero.WriteFile(w.Fs, path, []byte(prompt), 0o644); err != nil {
		w.Logger.Error("Failed to write output file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.Logger.Info("Wrote prompt",
		zap.String("outputFile", path),
		zap.String("size", humanize.Bytes(uint64(len(prompt)))))
	return nil
}
