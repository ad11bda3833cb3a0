package iwfm

import (
	"fmt"

	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
)

// Engine-delegated time operations. Calendar arithmetic over variable
// month and year lengths stays inside the engine; the host side only
// validates arguments and applies result policies.

// charArg marshals s as an exact-length character buffer plus the length
// cell the engine expects alongside it.
func charArg(s string) (*native.CharBuffer, *native.Int) {
	b := native.NewCharBuffer(s, len(s))
	return b, native.NewInt(b.Len())
}

func dateArg(s string) (*native.CharBuffer, *native.Int) {
	b := native.NewCharBuffer(s, calendar.DateWidth)
	return b, native.NewInt(b.Len())
}

// IsDateGreater reports whether first is strictly later than second,
// under the engine's 24:00-as-next-midnight convention.
func IsDateGreater(eng native.Engine, first, second string) (bool, error) {
	if err := calendar.Validate(first); err != nil {
		return false, err
	}
	if err := calendar.Validate(second); err != nil {
		return false, err
	}
	aBuf, aLen := dateArg(first)
	bBuf, bLen := dateArg(second)
	result := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcIsTimeGreater, aBuf, aLen, bBuf, bLen, result, status); err != nil {
		return false, err
	}
	return result.Value() == 1, nil
}

// NIntervals counts whole calendar intervals between begin and end.
// countEndpoint adds one for the boundary endpoint, the convention used
// when sizing time-series output that includes the first step.
func NIntervals(eng native.Engine, begin, end, interval string, countEndpoint bool) (int, error) {
	if err := calendar.Validate(begin); err != nil {
		return 0, err
	}
	if err := calendar.Validate(end); err != nil {
		return 0, err
	}
	if err := calendar.ValidateInterval(interval); err != nil {
		return 0, err
	}
	later, err := IsDateGreater(eng, begin, end)
	if err != nil {
		return 0, err
	}
	if later {
		return 0, fmt.Errorf("%w: %s > %s", ErrDateOrder, begin, end)
	}

	bBuf, bLen := dateArg(begin)
	eBuf, eLen := dateArg(end)
	iBuf, iLen := charArg(interval)
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcNIntervals, bBuf, bLen, eBuf, eLen, iBuf, iLen, n, status); err != nil {
		return 0, err
	}
	count := n.Value()
	if countEndpoint {
		count++
	}
	return count, nil
}

// IncrementDate advances date by n intervals and returns the resulting
// engine-format timestamp.
func IncrementDate(eng native.Engine, date, interval string, n int) (string, error) {
	if err := calendar.Validate(date); err != nil {
		return "", err
	}
	if err := calendar.ValidateInterval(interval); err != nil {
		return "", err
	}
	dBuf, dLen := dateArg(date)
	iBuf, iLen := charArg(interval)
	out := native.EmptyCharBuffer(calendar.DateWidth)
	steps := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcIncrementTime, dBuf, dLen, iBuf, iLen, steps, out, status); err != nil {
		return "", err
	}
	return out.String(), nil
}
