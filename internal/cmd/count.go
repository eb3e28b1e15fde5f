package cmd

import (
	"fmt"

	"github.com/harrison/permgen/internal/logger"
	"github.com/harrison/permgen/internal/output"
	"github.com/harrison/permgen/internal/permute"
	"github.com/spf13/cobra"
)

// NewCountCommand creates the count subcommand
func NewCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count <input>",
		Short: "Count the arrangements of a string without generating them",
		Long: `Print how many arrangements each generator would produce.

  total     n!, the length of iterative output and of recursive output
            with --allow-duplicates
  distinct  n! divided by k! for every symbol repeated k times, the length
            of recursive output with duplicates excluded

Example:
  permgen count mississippi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, err := permute.Symbols(args[0])
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			out := cmd.OutOrStdout()
			return output.RenderCount(out, args[0],
				permute.Factorial(len(symbols)),
				permute.DistinctCount(symbols),
				logger.IsTerminal(out))
		},
	}
}
