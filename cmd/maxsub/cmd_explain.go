package main

import (
	"fmt"
	"io"

	"maxsub/internal/logging"
	"maxsub/internal/subarray"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// explainCmd reports where the best subarray lies
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show the maximum sum and the bounds of the subarray achieving it",
	Long: `Runs the same scan as the root command and also reports the 0-based,
inclusive bounds of the subarray it found. When several subarrays tie, the one
that ends first is reported.

Example:
  echo "9  -2 1 -3 4 -1 2 1 -5 4" | maxsub explain
  sum: 6
  start: 3
  end: 6
  length: 4`,
	Args: cobra.NoArgs,
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	seq, err := readSequence(cmd)
	if err != nil {
		return err
	}

	res, err := subarray.Scan(seq)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryScan).Debug("scan complete",
		zap.Int64("sum", res.Sum),
		zap.Int("start", res.Start),
		zap.Int("end", res.End),
	)

	w := &errWriter{w: cmd.OutOrStdout()}
	w.printf("sum: %d\n", res.Sum)
	w.printf("start: %d\n", res.Start)
	w.printf("end: %d\n", res.End)
	w.printf("length: %d\n", res.Len())
	return w.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
