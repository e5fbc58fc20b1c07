package main

import (
	"fmt"

	"maxsub/internal/logging"
	"maxsub/internal/subarray"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyLimit int

// verifyCmd cross-checks Kadane's scan against the quadratic reference
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check the linear scan against a brute-force computation",
	Long: `Computes the maximum subarray sum twice, once with Kadane's scan and once
by summing every contiguous subarray, and fails if the two disagree.

The brute-force pass is quadratic, so sequences longer than --limit are refused.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryVerify)

	seq, err := readSequence(cmd)
	if err != nil {
		return err
	}
	if len(seq) > verifyLimit {
		return fmt.Errorf("sequence has %d elements, verify is limited to %d (raise --limit)", len(seq), verifyLimit)
	}

	fast, err := subarray.MaxSum(seq)
	if err != nil {
		return err
	}
	slow, err := subarray.BruteForce(seq)
	if err != nil {
		return err
	}

	if fast != slow {
		log.Error("mismatch", zap.Int64("kadane", fast), zap.Int64("brute_force", slow))
		return fmt.Errorf("mismatch: kadane=%d brute_force=%d", fast, slow)
	}

	log.Debug("verified", zap.Int("count", len(seq)), zap.Int64("sum", fast))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %d\n", fast)
	return err
}
