// Package source enumerates a directory into file handles for the combine pipeline.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"promptpack/pkg/combine"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrNotDirectory is returned when the walk root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrFilesystemRoot is returned for a walk root with no name of its own, such as "/".
	ErrFilesystemRoot = errors.New("cannot walk a filesystem root")
)

// File is a lazily read file on an afero filesystem.
type File struct {
	fs       afero.Fs
	path     string // Path on fs.
	fullPath string // Root-inclusive, "/"-separated.
}

// FullPath returns the path starting at the walked directory's name.
func (f *File) FullPath() string { return f.fullPath }

// ReadText reads the whole file and decodes it as UTF-8.
// A leading byte order mark is dropped and invalid bytes become U+FFFD.
func (f *File) ReadText() (string, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", f.path, err)
	}

	text, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("error decoding file %s: %w", f.path, err)
	}
	return string(text), nil
}

// Walk collects every regular file below dir, in lexical order.
// Full paths start with the base name of dir, the way a browser reports
// files of a selected folder.
func Walk(fs afero.Fs, dir string, logger *zap.Logger) ([]combine.FileHandle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		logger.Warn("Failed to get absolute path", zap.String("path", dir), zap.Error(err))
		absDir = dir // Fallback to original value
	}

	info, err := fs.Stat(absDir)
	if err != nil {
		logger.Error("Path does not exist or cannot be accessed", zap.String("path", absDir), zap.Error(err))
		return nil, fmt.Errorf("failed to stat %s: %w", absDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absDir, ErrNotDirectory)
	}
	if filepath.Dir(absDir) == absDir {
		return nil, fmt.Errorf("%s: %w", absDir, ErrFilesystemRoot)
	}

	rootName := filepath.Base(absDir)
	logger.Debug("Starting file traversal", zap.String("dir", absDir), zap.String("root", rootName))

	var files []combine.FileHandle
	err = afero.Walk(fs, absDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if info != nil && info.IsDir() && path != absDir {
				return filepath.SkipDir
			}
			return nil // Skip paths that cause errors
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, relErr := filepath.Rel(absDir, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}

		files = append(files, &File{
			fs:       fs,
			path:     path,
			fullPath: rootName + "/" + filepath.ToSlash(relPath),
		})
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return files, fmt.Errorf("failed to walk %s: %w", absDir, err)
	}

	logger.Debug("Completed file traversal", zap.Int("files", len(files)))
	return files, nil
}
