// Package calendar enforces the engine's fixed time conventions: the
// 16-character MM/DD/YYYY_HH:MM timestamp (where 24:00 marks the end of a
// day rather than the start of the next) and the closed set of simulation
// interval labels ordered by coarseness.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// DateWidth is the exact length of every engine timestamp.
const DateWidth = 16

const dateLayout = "01/02/2006"

// ErrNotText indicates a timestamp argument that was not given as text.
var ErrNotText = errors.New("calendar: date must be text")

// FormatError describes why a timestamp failed the fixed-format check.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("calendar: %q is not a valid MM/DD/YYYY_HH:MM date: %s", e.Input, e.Reason)
}

func formatErr(input, reason string, args ...any) error {
	return &FormatError{Input: input, Reason: fmt.Sprintf(reason, args...)}
}

// Validate checks s against the fixed 16-character engine date format.
// It returns nil on success; any failure reports which rule was broken.
func Validate(s string) error {
	if len(s) != DateWidth {
		return formatErr(s, "length %d, want %d", len(s), DateWidth)
	}
	if s[2] != '/' || s[5] != '/' {
		return formatErr(s, "date separators must be '/' at positions 3 and 6")
	}
	if s[10] != '_' {
		return formatErr(s, "date and time must be joined by '_'")
	}
	if s[13] != ':' {
		return formatErr(s, "time separator must be ':'")
	}
	if _, err := time.Parse(dateLayout, s[:10]); err != nil {
		return formatErr(s, "calendar date does not exist")
	}
	hh, mm, err := timeOfDay(s)
	if err != nil {
		return err
	}
	if hh < 0 || hh > 24 {
		return formatErr(s, "hour %d out of range [0,24]", hh)
	}
	if mm < 0 || mm > 59 {
		return formatErr(s, "minute %d out of range [0,59]", mm)
	}
	if hh == 24 && mm != 0 {
		return formatErr(s, "hour 24 requires minute 00")
	}
	return nil
}

// timeOfDay reads the HH and MM fields as exact two-digit numbers. Sscanf
// would accept space padding and stop at stray non-digits; the fixed
// format allows neither.
func timeOfDay(s string) (hh, mm int, err error) {
	for _, i := range []int{11, 12, 14, 15} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, formatErr(s, "time of day is not numeric")
		}
	}
	hh, _ = strconv.Atoi(s[11:13])
	mm, _ = strconv.Atoi(s[14:16])
	return hh, mm, nil
}

// Parse converts a validated engine date to a time.Time, mapping the 24:00
// end-of-day marker to midnight of the following day.
func Parse(s string) (time.Time, error) {
	if err := Validate(s); err != nil {
		return time.Time{}, err
	}
	day, _ := time.Parse(dateLayout, s[:10])
	hh, mm, _ := timeOfDay(s)
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute), nil
}

// Format renders t as a 16-character engine date. Midnight is rendered as
// 24:00 of the previous day, matching the engine's end-of-day convention.
func Format(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.AddDate(0, 0, -1).Format(dateLayout) + "_24:00"
	}
	return t.Format(dateLayout) + t.Format("_15:04")
}
