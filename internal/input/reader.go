// Package input reads a counted sequence of integers: a count n followed by n
// whitespace-separated 32-bit integers.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrMissingCount means the input held no tokens at all.
	ErrMissingCount = errors.New("missing element count")
	// ErrInvalidCount means the count was not a positive integer.
	ErrInvalidCount = errors.New("invalid element count")
	// ErrCountTooLarge means the count exceeded Options.MaxCount.
	ErrCountTooLarge = errors.New("element count exceeds limit")
	// ErrShortInput means the input ended before n elements were read.
	ErrShortInput = errors.New("fewer elements than declared")
	// ErrTrailingInput means strict mode found tokens after the n-th element.
	ErrTrailingInput = errors.New("unexpected tokens after last element")
)

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 20

// maxInitialCap bounds the up-front reservation; a declared count alone never
// allocates more than this many elements.
const maxInitialCap = 1 << 16

// Sequence is an ordered, fixed-length run of integers.
type Sequence []int32

// Options controls how strictly input is validated.
type Options struct {
	// MaxCount rejects counts above it before anything is allocated. Zero means no limit.
	MaxCount int
	// Strict rejects tokens that follow the last declared element.
	Strict bool
}

// TokenError reports an element token that is not a 32-bit integer.
type TokenError struct {
	Index int // 0-based element index
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("element %d: invalid integer %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Read parses the count and its elements from r.
func Read(r io.Reader, opts Options) (Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read count: %w", err)
		}
		return nil, ErrMissingCount
	}

	countToken := scanner.Text()
	n, err := strconv.Atoi(countToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCount, countToken)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if opts.MaxCount > 0 && n > opts.MaxCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrCountTooLarge, n, opts.MaxCount)
	}

	seq := make(Sequence, 0, min(n, maxInitialCap))
	for len(seq) < n {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read element %d: %w", len(seq), err)
			}
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, len(seq), n)
		}

		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, &TokenError{Index: len(seq), Token: tok, Err: unwrapNumError(err)}
		}
		seq = append(seq, int32(v))
	}

	if opts.Strict && scanner.Scan() {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, scanner.Text())
	}
	if opts.Strict {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read trailing input: %w", err)
		}
	}

	return seq, nil
}

// unwrapNumError strips strconv's wrapper so callers see ErrSyntax or ErrRange
// directly; the token is already carried by TokenError.
func unwrapNumError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
