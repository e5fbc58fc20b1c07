package input

import (
	"errors"
	"io"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Sequence
	}{
		{"single line", "3 1 2 3", Sequence{1, 2, 3}},
		{"count on own line", "9\n-2 1 -3 4 -1 2 1 -5 4\n", Sequence{-2, 1, -3, 4, -1, 2, 1, -5, 4}},
		{"one per line", "2\n-7\n\n8\n", Sequence{-7, 8}},
		{"tabs and crlf", "2\r\n\t5\t-5\r\n", Sequence{5, -5}},
		{"explicit plus sign", "1 +42", Sequence{42}},
		{"int32 extremes", "2 2147483647 -2147483648", Sequence{2147483647, -2147483648}},
		{"trailing tokens ignored", "2 1 2 3 junk", Sequence{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		opts    Options
		wantErr error
	}{
		{"empty", "", Options{}, ErrMissingCount},
		{"whitespace only", " \n\t ", Options{}, ErrMissingCount},
		{"zero count", "0", Options{}, ErrInvalidCount},
		{"negative count", "-4 1 2", Options{}, ErrInvalidCount},
		{"non numeric count", "abc 1", Options{}, ErrInvalidCount},
		{"short", "3 1 2", Options{}, ErrShortInput},
		{"count only", "2", Options{}, ErrShortInput},
		{"over limit", "5 1 2 3 4 5", Options{MaxCount: 4}, ErrCountTooLarge},
		{"strict trailing", "1 1 2", Options{Strict: true}, ErrTrailingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRead_StrictAcceptsExactInput(t *testing.T) {
	got, err := Read(strings.NewReader("2 1 2\n\n"), Options{Strict: true, MaxCount: 2})
	require.NoError(t, err)
	assert.Equal(t, Sequence{1, 2}, got)
}

func TestRead_TokenError(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Read(strings.NewReader("3 1 x 3"), Options{})

		var tokErr *TokenError
		require.True(t, errors.As(err, &tokErr))
		assert.Equal(t, 1, tokErr.Index)
		assert.Equal(t, "x", tokErr.Token)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Contains(t, err.Error(), `element 1: invalid integer "x"`)
	})

	t.Run("out of int32 range", func(t *testing.T) {
		_, err := Read(strings.NewReader("2 1 2147483648"), Options{})

		var tokErr *TokenError
		require.True(t, errors.As(err, &tokErr))
		assert.Equal(t, 1, tokErr.Index)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRead_PropagatesReaderError(t *testing.T) {
	_, err := Read(failingReader{}, Options{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Read(io.MultiReader(strings.NewReader("3 1 "), failingReader{}), Options{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRead_HeaderOnlyDoesNotReserveDeclaredCount(t *testing.T) {
	const count = 10_000_000

	var err error
	allocs := testing.AllocsPerRun(5, func() {
		_, err = Read(strings.NewReader("10000000"), Options{MaxCount: count})
	})
	assert.ErrorIs(t, err, ErrShortInput)
	assert.Less(t, allocs, float64(20))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err = Read(strings.NewReader("10000000"), Options{MaxCount: count})
	runtime.ReadMemStats(&after)

	assert.ErrorIs(t, err, ErrShortInput)
	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(4*count/10), "allocated %d bytes for a header-only input", allocated)
}

func TestRead_GrowsPastInitialCapacity(t *testing.T) {
	n := maxInitialCap + 10

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n))
	for i := 0; i < n; i++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(i % 7))
	}

	got, err := Read(strings.NewReader(sb.String()), Options{})
	require.NoError(t, err)
	require.Len(t, got, n)
	assert.Equal(t, int32((n-1)%7), got[n-1])
}
