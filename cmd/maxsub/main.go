package main

import (
	"fmt"
	"io"
	"os"

	"maxsub/internal/config"
	"maxsub/internal/input"
	"maxsub/internal/logging"
	"maxsub/internal/subarray"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputPath  string
	strict     bool

	// Loaded in PersistentPreRunE
	cfg = config.DefaultConfig()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "maxsub",
	Short: "Maximum contiguous subarray sum",
	Long: `maxsub reads a count n followed by n integers and prints the largest sum
of any non-empty run of consecutive elements (Kadane's algorithm).

Input is read from stdin unless --input is given. Elements must fit in 32 bits;
sums are computed in 64 bits.

Example:
  echo "9  -2 1 -3 4 -1 2 1 -5 4" | maxsub
  6`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("strict") {
			loaded.Input.Strict = strict
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		cfg = loaded

		if err := logging.Initialize(cfg.Logging, verbose, uuid.NewString()); err != nil {
			return err
		}
		logging.Get(logging.CategoryBoot).Debug("config loaded",
			zap.String("path", path),
			zap.Int("max_count", cfg.Input.MaxCount),
			zap.Bool("strict", cfg.Input.Strict),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runMaxSum,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/maxsub/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Read input from file instead of stdin")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject tokens after the last declared element")

	verifyCmd.Flags().IntVar(&verifyLimit, "limit", 5000, "Largest sequence the quadratic check will accept")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command and flushes the logger on every path.
// PersistentPostRun is skipped when RunE fails.
func run() error {
	defer logging.Sync()

	err := rootCmd.Execute()
	if err != nil {
		logging.Get(logging.CategoryBoot).Debug("command failed", zap.Error(err))
	}
	return err
}

// runMaxSum prints the maximum subarray sum and nothing else.
func runMaxSum(cmd *cobra.Command, args []string) error {
	seq, err := readSequence(cmd)
	if err != nil {
		return err
	}

	sum, err := subarray.MaxSum(seq)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryScan).Debug("scan complete",
		zap.Int("count", len(seq)),
		zap.Int64("sum", sum),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}

// readSequence reads the counted sequence from --input or the command's stdin.
func readSequence(cmd *cobra.Command) (input.Sequence, error) {
	log := logging.Get(logging.CategoryInput)

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		source = inputPath
	}

	seq, err := input.Read(r, input.Options{
		MaxCount: cfg.Input.MaxCount,
		Strict:   cfg.Input.Strict,
	})
	if err != nil {
		log.Warn("rejected input", zap.String("source", source), zap.Error(err))
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	log.Debug("input read", zap.String("source", source), zap.Int("count", len(seq)))
	return seq, nil
}
