package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"10/01/1990_24:00", // end-of-day marker
		"10/01/1990_00:00",
		"02/29/1992_12:30", // leap year
		"12/31/2020_23:59",
	}
	for _, s := range valid {
		assert.NoError(t, Validate(s), s)
	}

	invalid := map[string]string{
		"02/29/1991_12:00":  "non-leap Feb 29",
		"10/01/1990_24:01":  "nonzero minutes at hour 24",
		"13/01/1990_10:00":  "month out of range",
		"10/01/1990_10:0":   "15 characters",
		"10/01/1990_10:000": "17 characters",
		"10-01-1990_10:00":  "wrong date separators",
		"10/01/1990 10:00":  "missing underscore",
		"10/01/1990_10.00":  "wrong time separator",
		"10/01/1990_25:00":  "hour out of range",
		"10/01/1990_1x:00":  "non-numeric time",
		"10/01/1990_12:3x":  "trailing non-digit in minutes",
		"10/01/1990_ 4:00":  "space-padded hour",
		"10/01/1990_12: 5":  "space-padded minute",
	}
	for s, why := range invalid {
		err := Validate(s)
		require.Error(t, err, why)
		var fe *FormatError
		assert.ErrorAs(t, err, &fe, why)
	}
}

func TestParse_EndOfDay(t *testing.T) {
	got, err := Parse("09/30/2011_24:00")
	require.NoError(t, err)
	want := time.Date(2011, time.October, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "24:00 must roll to next midnight, got %v", got)
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []string{"09/30/2011_24:00", "03/15/1975_06:45"} {
		ts, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(ts))
	}
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval("1MON"))
	assert.NoError(t, ValidateInterval("1mon"))
	assert.NoError(t, ValidateInterval(" 1DAY "))
	assert.ErrorIs(t, ValidateInterval("7DAY"), ErrUnknownInterval)
	assert.ErrorIs(t, ValidateInterval(""), ErrUnknownInterval)
}

func TestCoarserOrEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1MON", "1DAY", true},
		{"1DAY", "1MON", false},
		{"1DAY", "1DAY", true},
		{"1YEAR", "1MIN", true},
		{"1MIN", "1YEAR", false},
		{"12HOUR", "30MIN", true},
		{"30MIN", "12HOUR", false},
		{"1WEEK", "1DAY", true},
		{"1HOUR", "8HOUR", false},
	}
	for _, c := range cases {
		got, err := CoarserOrEqual(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s >= %s", c.a, c.b)
	}

	// The full grid must agree with list position.
	for i, a := range Intervals {
		for j, b := range Intervals {
			got, err := CoarserOrEqual(a, b)
			require.NoError(t, err)
			assert.Equal(t, i >= j, got, "%s >= %s", a, b)
		}
	}

	_, err := CoarserOrEqual("1FORTNIGHT", "1DAY")
	assert.ErrorIs(t, err, ErrUnknownInterval)
}
