package iwfm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
	"hydrobind/internal/strpack"
)

// titleWidth is the engine's character-slot width for budget title lines.
const titleWidth = 200

// Units carries the unit labels stamped into budget titles and column
// headers. Empty labels are allowed; the engine leaves the placeholders
// blank.
type Units struct {
	Length string
	Area   string
	Volume string
}

// Factors carries the unit conversion factors applied to budget values.
type Factors struct {
	Length float64
	Area   float64
	Volume float64
}

// DefaultFactors performs no unit conversion.
var DefaultFactors = Factors{Length: 1, Area: 1, Volume: 1}

// Budget reads one budget results file through the engine.
type Budget struct {
	handle

	nLocations     *int
	locations      []string
	nTimeSteps     *int
	storedInterval string
}

// OpenBudget opens a budget results file.
func OpenBudget(eng native.Engine, path string) (*Budget, error) {
	b := &Budget{handle: newHandle(eng, nil, "budget")}
	buf, length := charArg(path)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetOpenFile, buf, length, status); err != nil {
		return nil, err
	}
	b.log.Info("budget file opened", zap.String("path", path))
	return b, nil
}

// WithBudget runs fn against an opened budget file, closing it on every
// exit path.
func WithBudget(eng native.Engine, path string, fn func(*Budget) error) error {
	b, err := OpenBudget(eng, path)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}

// Close releases the engine-side budget file.
func (b *Budget) Close() error {
	eng, err := b.engine()
	if err != nil {
		return err
	}
	defer b.release()
	status := native.NewInt(0)
	return eng.Call(native.ProcBudgetCloseFile, status)
}

// NLocations returns the number of budget locations in the file.
func (b *Budget) NLocations() (int, error) {
	if b.nLocations != nil {
		return *b.nLocations, nil
	}
	eng, err := b.engine()
	if err != nil {
		return 0, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetNLocations, n, status); err != nil {
		return 0, err
	}
	v := n.Value()
	b.nLocations = &v
	return v, nil
}

// Locations returns the display names of the budget locations, in
// location order.
func (b *Budget) Locations() ([]string, error) {
	if b.locations != nil {
		out := make([]string, len(b.locations))
		copy(out, b.locations)
		return out, nil
	}
	n, err := b.NLocations()
	if err != nil {
		return nil, err
	}
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	buf := native.EmptyCharBuffer(native.NameWidth * n)
	length := native.NewInt(buf.Len())
	offsets := native.NewIntArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetLocations, nCell, buf, length, offsets, status); err != nil {
		return nil, err
	}
	names, err := strpack.Decode(buf.Raw(), offsets, n)
	if err != nil {
		return nil, err
	}
	b.locations = names
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// LocationIndex resolves a location display name to its one-based
// location number.
func (b *Budget) LocationIndex(name string) (int, error) {
	names, err := b.Locations()
	if err != nil {
		return 0, err
	}
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: budget location %q", ErrUnknownID, name)
}

func (b *Budget) checkLocation(location int) error {
	n, err := b.NLocations()
	if err != nil {
		return err
	}
	if location < 1 || location > n {
		return fmt.Errorf("%w: budget location %d of %d", ErrUnknownID, location, n)
	}
	return nil
}

// NTimeSteps returns the number of time steps stored in the file.
func (b *Budget) NTimeSteps() (int, error) {
	if b.nTimeSteps != nil {
		return *b.nTimeSteps, nil
	}
	eng, err := b.engine()
	if err != nil {
		return 0, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetNTimeSteps, n, status); err != nil {
		return 0, err
	}
	v := n.Value()
	b.nTimeSteps = &v
	return v, nil
}

// TimeSpecs returns every stored time stamp and the file's native
// interval label.
func (b *Budget) TimeSpecs() (dates []string, interval string, err error) {
	n, err := b.NTimeSteps()
	if err != nil {
		return nil, "", err
	}
	eng, err := b.engine()
	if err != nil {
		return nil, "", err
	}
	datesBuf := native.EmptyCharBuffer(calendar.DateWidth * n)
	datesLen := native.NewInt(datesBuf.Len())
	intervalBuf := native.EmptyCharBuffer(native.NameWidth)
	intervalLen := native.NewInt(intervalBuf.Len())
	nCell := native.NewInt(n)
	offsets := native.NewIntArray(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetTimeSpecs,
		datesBuf, datesLen, intervalBuf, intervalLen, nCell, offsets, status); err != nil {
		return nil, "", err
	}
	dates, err = strpack.Decode(datesBuf.Raw(), offsets, n)
	if err != nil {
		return nil, "", err
	}
	b.storedInterval = intervalBuf.String()
	return dates, b.storedInterval, nil
}

// dataInterval returns the file's native interval, fetching it on first
// use.
func (b *Budget) dataInterval() (string, error) {
	if b.storedInterval != "" {
		return b.storedInterval, nil
	}
	_, interval, err := b.TimeSpecs()
	if err != nil {
		return "", err
	}
	return interval, nil
}

// NTitles returns the number of title lines for one location.
func (b *Budget) NTitles(location int) (int, error) {
	if err := b.checkLocation(location); err != nil {
		return 0, err
	}
	eng, err := b.engine()
	if err != nil {
		return 0, err
	}
	loc := native.NewInt(location)
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetNTitles, loc, n, status); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// Titles returns the title lines of one location, with unit labels and
// area/volume factors stamped in.
func (b *Budget) Titles(location int, units Units, factors Factors) ([]string, error) {
	n, err := b.NTitles(location)
	if err != nil {
		return nil, err
	}
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	loc := native.NewInt(location)
	areaF := native.NewDouble(factors.Area)
	volumeF := native.NewDouble(factors.Volume)
	lenBuf, lenLen := charArg(padUnit(units.Length))
	areaBuf, areaLen := charArg(padUnit(units.Area))
	volBuf, volLen := charArg(padUnit(units.Volume))
	nCell := native.NewInt(n)
	titles := native.EmptyCharBuffer(titleWidth * n)
	titlesLen := native.NewInt(titles.Len())
	offsets := native.NewIntArray(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetTitles,
		loc, areaF, volumeF, lenBuf, lenLen, areaBuf, areaLen, volBuf, volLen,
		nCell, titles, titlesLen, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(titles.Raw(), offsets, n)
}

// NColumns returns the number of data columns for one location, the time
// column excluded.
func (b *Budget) NColumns(location int) (int, error) {
	if err := b.checkLocation(location); err != nil {
		return 0, err
	}
	eng, err := b.engine()
	if err != nil {
		return 0, err
	}
	loc := native.NewInt(location)
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetNColumns, loc, n, status); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// ColumnHeaders returns the column headers of one location with unit
// labels stamped in.
func (b *Budget) ColumnHeaders(location int, units Units) ([]string, error) {
	n, err := b.NColumns(location)
	if err != nil {
		return nil, err
	}
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	loc := native.NewInt(location)
	lenBuf, lenLen := charArg(padUnit(units.Length))
	areaBuf, areaLen := charArg(padUnit(units.Area))
	volBuf, volLen := charArg(padUnit(units.Volume))
	nCell := native.NewInt(n)
	headers := native.EmptyCharBuffer(native.NameWidth * n)
	headersLen := native.NewInt(headers.Len())
	offsets := native.NewIntArray(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetHeaders,
		loc, lenBuf, lenLen, areaBuf, areaLen, volBuf, volLen,
		nCell, headers, headersLen, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(headers.Raw(), offsets, n)
}

// Values fetches the selected columns of one location over a date range,
// aggregated to the requested output interval.
//
// columns are one-based column numbers as reported by ColumnHeaders. The
// output interval must be no finer than the file's native interval.
func (b *Budget) Values(location int, columns []int, begin, end, interval string, factors Factors) (*Table, error) {
	if err := b.checkLocation(location); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no budget columns requested", ErrEmptySelection)
	}
	nCols, err := b.NColumns(location)
	if err != nil {
		return nil, err
	}
	for _, c := range columns {
		if c < 1 || c > nCols {
			return nil, fmt.Errorf("%w: budget column %d of %d", ErrUnknownID, c, nCols)
		}
	}
	stored, err := b.dataInterval()
	if err != nil {
		return nil, err
	}
	ok, err := calendar.CoarserOrEqual(interval, stored)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s < %s", ErrIntervalTooFine, interval, stored)
	}
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	nRows, err := NIntervals(eng, begin, end, interval, true)
	if err != nil {
		return nil, err
	}

	headers, err := b.ColumnHeaders(location, Units{})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = headers[c-1]
	}

	loc := native.NewInt(location)
	cols := native.IntsToArray(columns)
	nColsCell := native.NewInt(len(columns))
	beginBuf, beginLen := dateArg(begin)
	endBuf, endLen := dateArg(end)
	intervalBuf, intervalLen := charArg(interval)
	lengthF := native.NewDouble(factors.Length)
	areaF := native.NewDouble(factors.Area)
	volumeF := native.NewDouble(factors.Volume)
	nRowsCell := native.NewInt(nRows)
	dates := native.NewDoubleArray(nRows)
	values := native.NewDoubleArray(nRows * len(columns))
	status := native.NewInt(0)
	if err := eng.Call(native.ProcBudgetGetValues,
		loc, cols, nColsCell, beginBuf, beginLen, endBuf, endLen, intervalBuf, intervalLen,
		lengthF, areaF, volumeF, nRowsCell, dates, values, status); err != nil {
		return nil, err
	}

	return assembleTable(names, dates.Floats(), values.Floats()), nil
}

// ValuesForColumn fetches a single named column of one location: the
// header is resolved to its column number, then the fetch proceeds as in
// Values.
func (b *Budget) ValuesForColumn(location int, columnName, begin, end, interval string, factors Factors) (*Table, error) {
	headers, err := b.ColumnHeaders(location, Units{})
	if err != nil {
		return nil, err
	}
	col := 0
	for i, h := range headers {
		if strings.EqualFold(h, columnName) {
			col = i + 1
			break
		}
	}
	if col == 0 {
		return nil, fmt.Errorf("%w: budget column %q", ErrUnknownID, columnName)
	}
	return b.Values(location, []int{col}, begin, end, interval, factors)
}

// padUnit widens a unit label to the engine's standard slot so blank
// labels still occupy their placeholder.
func padUnit(u string) string {
	if len(u) >= native.NameWidth {
		return u[:native.NameWidth]
	}
	return u + strings.Repeat(" ", native.NameWidth-len(u))
}
