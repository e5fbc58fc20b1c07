// Package subarray computes maximum contiguous-subsequence sums.
//
// Elements are 32-bit; every running sum is kept in int64, which holds the sum of
// up to 2^32 maximum-magnitude elements without overflow.
package subarray

import "errors"

// ErrEmpty is returned when a sequence has no elements. There is no empty
// subarray to fall back on.
var ErrEmpty = errors.New("subarray: empty sequence")

// Result is the outcome of a Scan. Start and End are 0-based and inclusive.
type Result struct {
	Sum   int64 `json:"sum"`
	Start int   `json:"start"`
	End   int   `json:"end"`
}

// Len returns the number of elements in the subarray.
func (r Result) Len() int {
	return r.End - r.Start + 1
}

// MaxSum returns the maximum sum over all non-empty contiguous subsequences of seq
// using Kadane's algorithm.
func MaxSum(seq []int32) (int64, error) {
	if len(seq) == 0 {
		return 0, ErrEmpty
	}

	maxSoFar := int64(seq[0])
	maxEndingHere := int64(seq[0])

	for _, v := range seq[1:] {
		x := int64(v)
		// Either extend the run ending at the previous element or start over at x.
		maxEndingHere = max(x, maxEndingHere+x)
		maxSoFar = max(maxSoFar, maxEndingHere)
	}

	return maxSoFar, nil
}

// Scan performs the same pass as MaxSum and also records where the best
// subarray lies. A new run starts only when x alone beats the extended run,
// and the best is replaced only on a strict improvement, so the optimum that
// ends first is reported.
func Scan(seq []int32) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrEmpty
	}

	best := Result{Sum: int64(seq[0])}
	runSum := int64(seq[0])
	runStart := 0

	for i := 1; i < len(seq); i++ {
		x := int64(seq[i])
		if x > runSum+x {
			runSum = x
			runStart = i
		} else {
			runSum += x
		}
		if runSum > best.Sum {
			best = Result{Sum: runSum, Start: runStart, End: i}
		}
	}

	return best, nil
}

// BruteForce evaluates every contiguous subsequence. It is quadratic and exists
// as a reference for Kadane's scan.
func BruteForce(seq []int32) (int64, error) {
	if len(seq) == 0 {
		return 0, ErrEmpty
	}

	best := int64(seq[0])
	for i := range seq {
		var sum int64
		for j := i; j < len(seq); j++ {
			sum += int64(seq[j])
			if sum > best {
				best = sum
			}
		}
	}
	return best, nil
}
