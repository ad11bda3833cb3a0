package iwfm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
	"hydrobind/pkg/iwfm"
)

func timeFake() *fakeEngine {
	f := newFakeEngine()
	f.on(native.ProcIsTimeGreater, timeCompare)
	f.on(native.ProcNIntervals, func(args []native.Cell) int {
		args[6].(*native.Int).Set(3)
		return 0
	})
	f.on(native.ProcIncrementTime, func(args []native.Cell) int {
		copy(args[5].(*native.CharBuffer).Raw(), "10/31/1990_24:00")
		return 0
	})
	return f
}

func TestIsDateGreater(t *testing.T) {
	f := timeFake()

	later, err := iwfm.IsDateGreater(f, "10/31/1990_24:00", "09/30/1990_24:00")
	require.NoError(t, err)
	assert.True(t, later)

	later, err = iwfm.IsDateGreater(f, "09/30/1990_24:00", "10/31/1990_24:00")
	require.NoError(t, err)
	assert.False(t, later)

	// equal stamps are not strictly greater
	later, err = iwfm.IsDateGreater(f, "09/30/1990_24:00", "09/30/1990_24:00")
	require.NoError(t, err)
	assert.False(t, later)
}

func TestIsDateGreaterRejectsMalformedDates(t *testing.T) {
	f := timeFake()

	_, err := iwfm.IsDateGreater(f, "1990-09-30 24:00", "09/30/1990_24:00")
	var fe *calendar.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, f.calls[native.ProcIsTimeGreater])

	_, err = iwfm.IsDateGreater(f, "09/30/1990_24:00", "09/30/1990_24:01")
	assert.ErrorAs(t, err, &fe)
}

func TestNIntervals(t *testing.T) {
	f := timeFake()

	n, err := iwfm.NIntervals(f, "09/30/1990_24:00", "12/31/1990_24:00", "1MON", false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = iwfm.NIntervals(f, "09/30/1990_24:00", "12/31/1990_24:00", "1MON", true)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNIntervalsValidation(t *testing.T) {
	f := timeFake()

	_, err := iwfm.NIntervals(f, "12/31/1990_24:00", "09/30/1990_24:00", "1MON", true)
	assert.ErrorIs(t, err, iwfm.ErrDateOrder)

	_, err = iwfm.NIntervals(f, "09/30/1990_24:00", "12/31/1990_24:00", "2FORTNIGHT", true)
	assert.ErrorIs(t, err, calendar.ErrUnknownInterval)
	assert.Equal(t, 0, f.calls[native.ProcNIntervals])
}

func TestIncrementDate(t *testing.T) {
	f := timeFake()

	next, err := iwfm.IncrementDate(f, "09/30/1990_24:00", "1MON", 1)
	require.NoError(t, err)
	assert.Equal(t, "10/31/1990_24:00", next)

	_, err = iwfm.IncrementDate(f, "bad", "1MON", 1)
	var fe *calendar.FormatError
	assert.ErrorAs(t, err, &fe)
}
