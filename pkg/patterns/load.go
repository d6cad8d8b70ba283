package patterns

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LoadFile reads newline-delimited pattern text from path.
func LoadFile(fs afero.Fs, path string, logger *zap.Logger) (PatternSet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		logger.Error("Failed to read pattern file", zap.String("filePath", path), zap.Error(err))
		return PatternSet{}, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	set := ParseLines(string(content))
	logger.Debug("Loaded pattern file", zap.String("filePath", path), zap.Int("patternCount", set.Len()))
	return set, nil
}
