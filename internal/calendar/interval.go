package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Intervals is the closed set of simulation time-step labels the engine
// accepts, ordered finest to coarsest. Position in this list defines the
// coarseness ordering used to validate output aggregation intervals.
var Intervals = []string{
	"1MIN", "2MIN", "3MIN", "4MIN", "5MIN", "10MIN", "15MIN", "20MIN", "30MIN",
	"1HOUR", "2HOUR", "3HOUR", "4HOUR", "6HOUR", "8HOUR", "12HOUR",
	"1DAY", "1WEEK", "1MON", "1YEAR",
}

var intervalRank = func() map[string]int {
	m := make(map[string]int, len(Intervals))
	for i, s := range Intervals {
		m[s] = i
	}
	return m
}()

// ErrUnknownInterval indicates a label outside the fixed interval set.
var ErrUnknownInterval = errors.New("calendar: unrecognized time interval")

// ValidateInterval checks that label is one of the fixed interval labels.
// Matching is case-insensitive; the engine itself only emits upper case.
func ValidateInterval(label string) error {
	if _, ok := intervalRank[strings.ToUpper(strings.TrimSpace(label))]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterval, label)
	}
	return nil
}

// CoarserOrEqual reports whether interval a is at least as coarse as b.
// Both labels must belong to the fixed interval set.
func CoarserOrEqual(a, b string) (bool, error) {
	ra, ok := intervalRank[strings.ToUpper(strings.TrimSpace(a))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownInterval, a)
	}
	rb, ok := intervalRank[strings.ToUpper(strings.TrimSpace(b))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownInterval, b)
	}
	return ra >= rb, nil
}
