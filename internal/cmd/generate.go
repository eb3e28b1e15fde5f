package cmd

import (
	"fmt"
	"time"

	"github.com/harrison/permgen/internal/config"
	"github.com/harrison/permgen/internal/logger"
	"github.com/harrison/permgen/internal/models"
	"github.com/harrison/permgen/internal/output"
	"github.com/harrison/permgen/internal/permute"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <input>",
		Aliases: []string{"gen"},
		Short:   "Generate the permutations of a string",
		Long: `Generate every arrangement of the symbols (Unicode code points) in <input>.

The recursive generator walks positions with swap-and-restore backtracking.
By default it lists each distinct arrangement once; --allow-duplicates keeps
all n! orderings. The iterative generator runs Heap's algorithm and always
emits all n! orderings, repeats included.

Configuration is loaded from .permgen/config.yaml (or $PERMGEN_HOME/config.yaml)
if present. CLI flags override configuration file settings.

Examples:
  permgen generate ab
  permgen generate aab --allow-duplicates
  permgen generate 1x3e --algorithm iterative --format json
  permgen generate abcdef --output perms.yaml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .permgen/config.yaml)")
	cmd.Flags().StringP("algorithm", "a", "", "Generator to use: "+models.AlgorithmNames())
	cmd.Flags().Bool("allow-duplicates", false, "Keep repeated arrangements (recursive generator)")
	cmd.Flags().Bool("exclude-duplicates", false, "Drop repeated arrangements (overrides config)")
	cmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")
	cmd.Flags().Int("max-length", -1, "Longest input to expand (0 = unlimited, -1 = use config)")
	cmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")

	return cmd
}

// runGenerate implements the generate command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadGenerateConfig(cmd)
	if err != nil {
		return err
	}

	var log logger.Logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	input := args[0]

	symbols, err := permute.Symbols(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if cfg.MaxLength > 0 && len(symbols) > cfg.MaxLength {
		return fmt.Errorf("input has %d symbols, more than max_length %d (%s arrangements); raise --max-length to proceed",
			len(symbols), cfg.MaxLength, permute.Factorial(len(symbols)))
	}

	algorithm, err := models.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	exclude := cfg.ExcludeDuplicates && algorithm.SuppressesDuplicates()

	if !exclude && permute.DistinctCount(symbols).Cmp(permute.Factorial(len(symbols))) < 0 {
		stderr := cmd.ErrOrStderr()
		output.WarnRepeatedSymbols(input, algorithm.String()).Display(stderr, logger.IsTerminal(stderr))
	}

	log.LogGenerationStart(input, algorithm, exclude)
	start := time.Now()

	perms, err := generate(input, algorithm, exclude)
	if err != nil {
		return fmt.Errorf("failed to generate permutations: %w", err)
	}

	set := models.NewPermutationSet(input, algorithm, exclude, perms)
	log.LogGenerationComplete(set, time.Since(start))

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		out := cmd.OutOrStdout()
		return output.Render(out, set, cfg.Format, logger.IsTerminal(out))
	}

	data, err := output.Marshal(set, cfg.Format, false)
	if err != nil {
		return err
	}
	if err := output.WriteFile(outputPath, data); err != nil {
		return err
	}
	log.LogInfo(fmt.Sprintf("Wrote %d permutations to %s", set.Count, outputPath))
	return nil
}

// generate dispatches to the selected generator
func generate(input string, algorithm models.Algorithm, excludeDuplicates bool) ([]string, error) {
	switch algorithm {
	case models.AlgorithmRecursive:
		return permute.GeneratePermutations(input, excludeDuplicates)
	case models.AlgorithmIterative:
		return permute.GeneratePermutationsIterative(input)
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
}

// loadGenerateConfig loads the config file and applies flag overrides
func loadGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		cfg, err = config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("allow-duplicates") && cmd.Flags().Changed("exclude-duplicates") {
		return nil, fmt.Errorf("cannot use both --allow-duplicates and --exclude-duplicates")
	}

	// Build flag pointers for merge (only values set on the command line)
	var algorithmPtr *string
	if cmd.Flags().Changed("algorithm") {
		algorithm, _ := cmd.Flags().GetString("algorithm")
		algorithmPtr = &algorithm
	}

	var excludePtr *bool
	if cmd.Flags().Changed("allow-duplicates") {
		allow, _ := cmd.Flags().GetBool("allow-duplicates")
		exclude := !allow
		excludePtr = &exclude
	} else if cmd.Flags().Changed("exclude-duplicates") {
		exclude, _ := cmd.Flags().GetBool("exclude-duplicates")
		excludePtr = &exclude
	}

	var formatPtr *string
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		formatPtr = &format
	}

	var maxLengthPtr *int
	if maxLength, _ := cmd.Flags().GetInt("max-length"); cmd.Flags().Changed("max-length") && maxLength >= 0 {
		maxLengthPtr = &maxLength
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}

	cfg.MergeWithFlags(algorithmPtr, excludePtr, formatPtr, maxLengthPtr, logLevelPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
