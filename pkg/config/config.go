// File: pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"promptpack/pkg/patterns"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// FileName is the base name of the config file searched for in the working and home directories.
	FileName = ".promptpack"
	// EnvPrefix prefixes environment overrides, e.g. PROMPTPACK_MODE.
	EnvPrefix = "PROMPTPACK"
	// Stdout is the output destination meaning standard output.
	Stdout = "-"
)

// Keys shared by flags, environment and config files.
const (
	KeyMode        = "mode"
	KeyPatterns    = "patterns"
	KeyPatternFile = "pattern_file"
	KeyNoDefaults  = "no_defaults"
	KeyOutput      = "output"
	KeyCopy        = "copy"
	KeyTree        = "tree"
	KeyDebug       = "debug"
)

// Settings holds the options for one prompt generation.
type Settings struct {
	Mode        string   `mapstructure:"mode"`         // "exclude" or "include-only".
	Patterns    []string `mapstructure:"patterns"`     // Patterns given inline.
	PatternFile string   `mapstructure:"pattern_file"` // Optional newline-delimited pattern file.
	NoDefaults  bool     `mapstructure:"no_defaults"`  // Disables the default exclude list.
	Output      string   `mapstructure:"output"`       // Destination path, or "-" for stdout.
	Copy        bool     `mapstructure:"copy"`         // Copies the prompt to the clipboard.
	Tree        bool     `mapstructure:"tree"`         // Prepends a tree of the included files.
	Debug       bool     `mapstructure:"debug"`        // Enables development logging.
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMode, patterns.Exclude.String())
	v.SetDefault(KeyPatterns, []string{})
	v.SetDefault(KeyPatternFile, "")
	v.SetDefault(KeyNoDefaults, false)
	v.SetDefault(KeyOutput, Stdout)
	v.SetDefault(KeyCopy, false)
	v.SetDefault(KeyTree, false)
	v.SetDefault(KeyDebug, false)
}

// Load reads settings from, lowest to highest priority: defaults, a config
// file, PROMPTPACK_* environment variables, and any flags bound to v.
// The config file is configFile when set, otherwise the first .promptpack.yaml
// found in the working directory or $HOME. Only the implicit lookup may miss.
func Load(v *viper.Viper, configFile string, logger *zap.Logger) (Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var settings Settings
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Error("Failed to read config file", zap.String("file", configFile), zap.Error(err))
			return settings, fmt.Errorf("failed to read config: %w", err)
		}
		logger.Debug("Config file not found, using defaults")
	} else {
		logger.Debug("Loaded config file", zap.String("file", v.ConfigFileUsed()))
	}

	if err := v.Unmarshal(&settings); err != nil {
		return settings, fmt.Errorf("failed to decode config: %w", err)
	}
	return settings, nil
}

// ParsedMode returns the Mode named by the settings.
func (s Settings) ParsedMode() (patterns.Mode, error) {
	return patterns.ParseMode(s.Mode)
}

// PatternSet merges the inline patterns with the pattern file.
// When both are empty the defaults for mode apply unless NoDefaults is set.
func (s Settings) PatternSet(fs afero.Fs, mode patterns.Mode, logger *zap.Logger) (patterns.PatternSet, error) {
	set := patterns.ParseLines(strings.Join(s.Patterns, "\n"))

	if s.PatternFile != "" {
		fromFile, err := patterns.LoadFile(fs, s.PatternFile, logger)
		if err != nil {
			return patterns.PatternSet{}, err
		}
		set = set.Merge(fromFile)
	}

	if set.Len() == 0 && !s.NoDefaults {
		return patterns.Defaults(mode), nil
	}
	return set, nil
}
