package cmd

import (
	"fmt"

	"promptpack/pkg/patterns"

	"github.com/spf13/cobra"
)

// newDefaultsCmd prints the built-in exclude patterns, ready to seed a pattern file.
func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default exclude patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range patterns.DefaultExcludePatterns {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
