// File: cmd/generate.go
package cmd

import (
	"errors"
	"fmt"

	"promptpack/pkg/combine"
	"promptpack/pkg/config"
	"promptpack/pkg/output"
	"promptpack/pkg/source"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrNoInputFiles is returned when the selected directory holds no files.
var ErrNoInputFiles = errors.New("please select a folder first")

// NoMatchesMessage is printed when no file made it into the prompt.
const NoMatchesMessage = "No files found matching your criteria."

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Build a prompt from the files of a directory",
		Long: `Walk a directory, keep the files selected by the patterns and print them as
one prompt. In exclude mode a pattern ending in "/" drops a directory and any
other pattern drops files whose path ends with it. In include-only mode a
pattern ending in "/" keeps a directory and any other pattern keeps exactly
that path. Paths are relative to the directory, without its name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return a.generate(cmd, afero.NewOsFs(), dir)
		},
	}

	flags := cmd.Flags()
	flags.StringP("mode", "m", "exclude", `Filter mode: "exclude" or "include-only"`)
	flags.StringArrayP("pattern", "p", nil, "Pattern to apply (repeatable)")
	flags.StringP("pattern-file", "f", "", "File with one pattern per line")
	flags.Bool("no-defaults", false, "Do not fall back to the default exclude patterns")
	flags.StringP("output", "o", config.Stdout, `Write the prompt to this file ("-" for stdout)`)
	flags.BoolP("copy", "c", false, "Copy the prompt to the clipboard")
	flags.Bool("tree", false, "Prepend a tree of the included files")

	for key, name := range map[string]string{
		config.KeyMode:        "mode",
		config.KeyPatterns:    "pattern",
		config.KeyPatternFile: "pattern-file",
		config.KeyNoDefaults:  "no-defaults",
		config.KeyOutput:      "output",
		config.KeyCopy:        "copy",
		config.KeyTree:        "tree",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}

// generate runs the whole pipeline for dir on fs.
func (a *app) generate(cmd *cobra.Command, fs afero.Fs, dir string) error {
	mode, err := a.settings.ParsedMode()
	if err != nil {
		return err
	}

	set, err := a.settings.PatternSet(fs, mode, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load patterns: %w", err)
	}
	a.logger.Debug("Using patterns", zap.Stringer("mode", mode), zap.Strings("patterns", set.Strings()))

	files, err := source.Walk(fs, dir, a.logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	res := combine.NewPipeline(a.logger).Aggregate(files, set, mode)
	switch res.Status {
	case combine.StatusNoInputFiles:
		return ErrNoInputFiles
	case combine.StatusNoMatches:
		fmt.Fprintln(cmd.OutOrStdout(), NoMatchesMessage)
		return nil
	}

	prompt := res.Prompt
	if a.settings.Tree {
		prompt = combine.RenderTree(res.Root, res.Included) + "\n\n" + prompt
	}

	w := output.NewWriter(a.logger)
	w.Stdout = cmd.OutOrStdout()
	w.Fs = fs
	if err := w.Deliver(prompt, a.settings.Output, a.settings.Copy); err != nil {
		a.logger.Error("Failed to deliver prompt", zap.Error(err))
		return err
	}
	return nil
}
