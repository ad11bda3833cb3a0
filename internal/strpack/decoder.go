// Package strpack decodes the engine's packed string-block output format:
// one contiguous, space-padded character buffer holding N concatenated
// values, paired with an array of start offsets marking where each value
// begins. The engine emits offsets one-based (Fortran convention); this
// package normalizes them before slicing.
package strpack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadBuffer indicates the source buffer was neither text nor a raw
	// character array.
	ErrBadBuffer = errors.New("strpack: buffer must be a string or byte slice")

	// ErrBadOffsets indicates the offset array was missing or malformed.
	ErrBadOffsets = errors.New("strpack: invalid offset array")

	// ErrBadCount indicates the valid-entry count was negative or larger
	// than the offset array.
	ErrBadCount = errors.New("strpack: invalid valid-entry count")
)

// Decode splits a packed character block into trimmed strings.
//
// offsets carries one start position per expected value; entries past the
// first n are allocation padding and are ignored. If the first offset is 1
// the whole array is taken as one-based and shifted down before slicing.
// The i-th value runs from offsets[i] to offsets[i+1], the last to the end
// of the buffer.
func Decode(buf any, offsets []int32, n int) ([]string, error) {
	var text string
	switch b := buf.(type) {
	case string:
		text = b
	case []byte:
		text = string(b)
	default:
		return nil, fmt.Errorf("%w, got %T", ErrBadBuffer, buf)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return []string{}, nil
	}
	if offsets == nil || len(offsets) < n {
		return nil, fmt.Errorf("%w: %d offsets for %d values", ErrBadOffsets, len(offsets), n)
	}

	starts := make([]int, n)
	for i := 0; i < n; i++ {
		starts[i] = int(offsets[i])
	}
	if starts[0] == 1 {
		// One-based offsets from the Fortran side.
		for i := range starts {
			starts[i]--
		}
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		lo := starts[i]
		hi := len(text)
		if i+1 < n {
			hi = starts[i+1]
		}
		if lo < 0 || lo > hi || hi > len(text) {
			return nil, fmt.Errorf("%w: entry %d slices [%d:%d] of %d", ErrBadOffsets, i, lo, hi, len(text))
		}
		out[i] = strings.TrimSpace(strings.TrimRight(text[lo:hi], "\x00"))
	}
	return out, nil
}
