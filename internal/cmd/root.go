package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for permgen
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permgen",
		Short: "Enumerate the permutations of a string",
		Long: `Permgen lists every arrangement of the symbols in a string.

Two generators are available: a recursive backtracking generator that can
drop repeated arrangements, and an iterative generator (Heap's algorithm)
that always emits all n! arrangements in transposition order.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCountCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
