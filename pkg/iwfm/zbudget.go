package iwfm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
	"hydrobind/internal/strpack"
)

// ZBudget reads one zone-budget results file through the engine. Zone
// aggregation happens engine-side against the caller's ZoneDefinition.
type ZBudget struct {
	handle

	zoneIDs        *idList
	storedInterval string
}

// OpenZBudget opens a zone-budget results file.
func OpenZBudget(eng native.Engine, path string) (*ZBudget, error) {
	z := &ZBudget{handle: newHandle(eng, nil, "zbudget")}
	buf, length := charArg(path)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetOpenFile, buf, length, status); err != nil {
		return nil, err
	}
	z.log.Info("zone-budget file opened", zap.String("path", path))
	return z, nil
}

// WithZBudget runs fn against an opened zone-budget file, closing it on
// every exit path.
func WithZBudget(eng native.Engine, path string, fn func(*ZBudget) error) error {
	z, err := OpenZBudget(eng, path)
	if err != nil {
		return err
	}
	defer z.Close()
	return fn(z)
}

// Close releases the engine-side zone-budget file.
func (z *ZBudget) Close() error {
	eng, err := z.engine()
	if err != nil {
		return err
	}
	defer z.release()
	status := native.NewInt(0)
	return eng.Call(native.ProcZBudgetCloseFile, status)
}

// GenerateZoneList submits the zone definition to the engine. Any
// previously cached zone ids are discarded.
func (z *ZBudget) GenerateZoneList(def *ZoneDefinition) error {
	if err := def.validate(); err != nil {
		return err
	}
	eng, err := z.engine()
	if err != nil {
		return err
	}
	extent, n, elements, layers, zones, nNames, nameZones, names, namesLen := def.marshal()
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGenZoneList,
		extent, n, elements, layers, zones, nNames, nameZones, names, namesLen, status); err != nil {
		return err
	}
	z.zoneIDs = nil
	z.log.Debug("zone list generated", zap.Int("assignments", n.Value()))
	return nil
}

func (z *ZBudget) zoneList() (*idList, error) {
	if z.zoneIDs != nil {
		return z.zoneIDs, nil
	}
	eng, err := z.engine()
	if err != nil {
		return nil, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetNZones, n, status); err != nil {
		return nil, err
	}
	arr := native.NewIntArray(n.Value())
	nCell := native.NewInt(n.Value())
	status = native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetZoneIDs, nCell, arr, status); err != nil {
		return nil, err
	}
	z.zoneIDs = newIDList(arr.Ints())
	return z.zoneIDs, nil
}

// NZones returns the number of zones in the active zone list.
func (z *ZBudget) NZones() (int, error) {
	l, err := z.zoneList()
	if err != nil {
		return 0, err
	}
	return len(l.ids), nil
}

// ZoneIDs returns the user-facing zone ids of the active zone list.
func (z *ZBudget) ZoneIDs() ([]int, error) {
	l, err := z.zoneList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// ZoneNames returns the display names of the zones, in zone id order.
func (z *ZBudget) ZoneNames() ([]string, error) {
	l, err := z.zoneList()
	if err != nil {
		return nil, err
	}
	n := len(l.ids)
	eng, err := z.engine()
	if err != nil {
		return nil, err
	}
	buf := native.EmptyCharBuffer(native.NameWidth * n)
	length := native.NewInt(buf.Len())
	offsets := native.NewIntArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetZoneNames, nCell, buf, length, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(buf.Raw(), offsets, n)
}

// NTitles returns the number of zone-budget title lines.
func (z *ZBudget) NTitles() (int, error) {
	eng, err := z.engine()
	if err != nil {
		return 0, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetNTitles, n, status); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// Titles returns the zone-budget title lines with unit labels and
// area/volume factors stamped in.
func (z *ZBudget) Titles(units Units, factors Factors) ([]string, error) {
	n, err := z.NTitles()
	if err != nil {
		return nil, err
	}
	eng, err := z.engine()
	if err != nil {
		return nil, err
	}
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
	if err := eng.Call(native.ProcZBudgetGetTitles,
		areaF, volumeF, lenBuf, lenLen, areaBuf, areaLen, volBuf, volLen,
		nCell, titles, titlesLen, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(titles.Raw(), offsets, n)
}

func (z *ZBudget) zoneIndex(zoneID int) (int, error) {
	l, err := z.zoneList()
	if err != nil {
		return 0, err
	}
	pos, ok := l.indexOf(zoneID)
	if !ok {
		return 0, fmt.Errorf("%w: zone id %d", ErrUnknownID, zoneID)
	}
	return pos + 1, nil // engine is one-based
}

// NColumnsForZone returns the number of data columns of one zone.
func (z *ZBudget) NColumnsForZone(zoneID int) (int, error) {
	idx, err := z.zoneIndex(zoneID)
	if err != nil {
		return 0, err
	}
	eng, err := z.engine()
	if err != nil {
		return 0, err
	}
	zone := native.NewInt(idx)
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetNColumns, zone, n, status); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// ColumnHeadersForZone returns the column headers of one zone with unit
// labels stamped in.
func (z *ZBudget) ColumnHeadersForZone(zoneID int, units Units) ([]string, error) {
	idx, err := z.zoneIndex(zoneID)
	if err != nil {
		return nil, err
	}
	n, err := z.NColumnsForZone(zoneID)
	if err != nil {
		return nil, err
	}
	eng, err := z.engine()
	if err != nil {
		return nil, err
	}
	zone := native.NewInt(idx)
	lenBuf, lenLen := charArg(padUnit(units.Length))
	areaBuf, areaLen := charArg(padUnit(units.Area))
	volBuf, volLen := charArg(padUnit(units.Volume))
	nCell := native.NewInt(n)
	headers := native.EmptyCharBuffer(native.NameWidth * n)
	headersLen := native.NewInt(headers.Len())
	offsets := native.NewIntArray(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetHeaders,
		zone, lenBuf, lenLen, areaBuf, areaLen, volBuf, volLen,
		nCell, headers, headersLen, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(headers.Raw(), offsets, n)
}

// NTimeSteps returns the number of time steps stored in the file.
func (z *ZBudget) NTimeSteps() (int, error) {
	eng, err := z.engine()
	if err != nil {
		return 0, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetNTimeSteps, n, status); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// TimeSpecs returns every stored time stamp and the file's native
// interval label.
func (z *ZBudget) TimeSpecs() (dates []string, interval string, err error) {
	n, err := z.NTimeSteps()
	if err != nil {
		return nil, "", err
	}
	eng, err := z.engine()
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
	if err := eng.Call(native.ProcZBudgetGetTimeSpecs,
		datesBuf, datesLen, intervalBuf, intervalLen, nCell, offsets, status); err != nil {
		return nil, "", err
	}
	dates, err = strpack.Decode(datesBuf.Raw(), offsets, n)
	if err != nil {
		return nil, "", err
	}
	z.storedInterval = intervalBuf.String()
	return dates, z.storedInterval, nil
}

// dataInterval returns the file's native interval, fetching it on first
// use.
func (z *ZBudget) dataInterval() (string, error) {
	if z.storedInterval != "" {
		return z.storedInterval, nil
	}
	_, interval, err := z.TimeSpecs()
	if err != nil {
		return "", err
	}
	return interval, nil
}

// ValuesForSomeZones fetches the selected columns of several zones over a
// date range, one Table per zone id, aggregated to the requested output
// interval.
func (z *ZBudget) ValuesForSomeZones(zoneIDs, columns []int, begin, end, interval string, factors Factors) (map[int]*Table, error) {
	if len(zoneIDs) == 0 {
		return nil, fmt.Errorf("%w: no zones requested", ErrEmptySelection)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no zone-budget columns requested", ErrEmptySelection)
	}
	indices := make([]int, len(zoneIDs))
	columnNames := make(map[int][]string, len(zoneIDs))
	for i, id := range zoneIDs {
		idx, err := z.zoneIndex(id)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
		headers, err := z.ColumnHeadersForZone(id, Units{})
		if err != nil {
			return nil, err
		}
		names := make([]string, len(columns))
		for j, c := range columns {
			if c < 1 || c > len(headers) {
				return nil, fmt.Errorf("%w: zone %d column %d of %d", ErrUnknownID, id, c, len(headers))
			}
			names[j] = headers[c-1]
		}
		columnNames[id] = names
	}
	stored, err := z.dataInterval()
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
	eng, err := z.engine()
	if err != nil {
		return nil, err
	}
	nRows, err := NIntervals(eng, begin, end, interval, true)
	if err != nil {
		return nil, err
	}

	nZones := native.NewInt(len(indices))
	zoneArr := native.IntsToArray(indices)
	nCols := native.NewInt(len(columns))
	colArr := native.IntsToArray(columns)
	beginBuf, beginLen := dateArg(begin)
	endBuf, endLen := dateArg(end)
	intervalBuf, intervalLen := charArg(interval)
	lengthF := native.NewDouble(factors.Length)
	areaF := native.NewDouble(factors.Area)
	volumeF := native.NewDouble(factors.Volume)
	nRowsCell := native.NewInt(nRows)
	dates := native.NewDoubleArray(nRows)
	values := native.NewDoubleArray(len(indices) * nRows * len(columns))
	status := native.NewInt(0)
	if err := eng.Call(native.ProcZBudgetGetValues,
		nZones, zoneArr, nCols, colArr, beginBuf, beginLen, endBuf, endLen,
		intervalBuf, intervalLen, lengthF, areaF, volumeF,
		nRowsCell, dates, values, status); err != nil {
		return nil, err
	}

	flat := values.Floats()
	ts := dates.Floats()
	perZone := nRows * len(columns)
	out := make(map[int]*Table, len(zoneIDs))
	for zi, id := range zoneIDs {
		out[id] = assembleTable(columnNames[id], ts, flat[zi*perZone:(zi+1)*perZone])
	}
	return out, nil
}

// ValuesForAZone fetches the selected columns of a single zone.
func (z *ZBudget) ValuesForAZone(zoneID int, columns []int, begin, end, interval string, factors Factors) (*Table, error) {
	tables, err := z.ValuesForSomeZones([]int{zoneID}, columns, begin, end, interval, factors)
	if err != nil {
		return nil, err
	}
	return tables[zoneID], nil
}

// ColumnIndexForZone resolves a header name to its one-based column
// number for one zone.
func (z *ZBudget) ColumnIndexForZone(zoneID int, columnName string) (int, error) {
	headers, err := z.ColumnHeadersForZone(zoneID, Units{})
	if err != nil {
		return 0, err
	}
	for i, h := range headers {
		if strings.EqualFold(h, columnName) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: zone-budget column %q", ErrUnknownID, columnName)
}
