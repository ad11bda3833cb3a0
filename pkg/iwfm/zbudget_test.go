package iwfm_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrobind/internal/native"
	"hydrobind/pkg/iwfm"
)

// zoneListCall records the parallel arrays the zone-list procedure
// received, so tests can check the marshaled definition.
type zoneListCall struct {
	extent    int
	n         int
	elements  []int
	layers    []int
	zones     []int
	nNames    int
	nameZones []int
	names     string
}

func zbudgetFake() (*fakeEngine, *zoneListCall) {
	f := newFakeEngine()
	got := &zoneListCall{}

	f.on(native.ProcZBudgetOpenFile, succeed)
	f.on(native.ProcZBudgetCloseFile, succeed)
	f.on(native.ProcIsTimeGreater, timeCompare)
	f.on(native.ProcNIntervals, func(args []native.Cell) int {
		args[6].(*native.Int).Set(1)
		return 0
	})

	f.on(native.ProcZBudgetGenZoneList, func(args []native.Cell) int {
		got.extent = args[0].(*native.Int).Value()
		got.n = args[1].(*native.Int).Value()
		got.elements = args[2].(native.IntArray).Ints()
		got.layers = args[3].(native.IntArray).Ints()
		got.zones = args[4].(native.IntArray).Ints()
		got.nNames = args[5].(*native.Int).Value()
		got.nameZones = args[6].(native.IntArray).Ints()
		got.names = args[7].(*native.CharBuffer).String()
		return 0
	})
	f.on(native.ProcZBudgetGetNZones, setCount(2))
	f.on(native.ProcZBudgetGetZoneIDs, setIDs([]int{1, 2}))
	f.on(native.ProcZBudgetGetZoneNames, func(args []native.Cell) int {
		buf := args[1].(*native.CharBuffer)
		offsets := args[3].(native.IntArray)
		writePacked(buf, offsets, []string{"North Basin", "2"})
		return 0
	})

	f.on(native.ProcZBudgetGetNTitles, setCount(1))
	f.on(native.ProcZBudgetGetTitles, func(args []native.Cell) int {
		titles := args[9].(*native.CharBuffer)
		offsets := args[11].(native.IntArray)
		writePacked(titles, offsets, []string{"ZONE BUDGET IN AC-FT"})
		return 0
	})
	f.on(native.ProcZBudgetGetNColumns, func(args []native.Cell) int {
		args[1].(*native.Int).Set(2)
		return 0
	})
	f.on(native.ProcZBudgetGetHeaders, func(args []native.Cell) int {
		headers := args[8].(*native.CharBuffer)
		offsets := args[10].(native.IntArray)
		writePacked(headers, offsets, []string{"Pumping", "Recharge"})
		return 0
	})

	f.on(native.ProcZBudgetGetNTimeSteps, setCount(2))
	f.on(native.ProcZBudgetGetTimeSpecs, func(args []native.Cell) int {
		dates := args[0].(*native.CharBuffer)
		intervalBuf := args[2].(*native.CharBuffer)
		offsets := args[5].(native.IntArray)
		writePacked(dates, offsets, []string{"09/30/1990_24:00", "10/31/1990_24:00"})
		copy(intervalBuf.Raw(), "1MON")
		return 0
	})

	f.on(native.ProcZBudgetGetValues, func(args []native.Cell) int {
		nZones := args[0].(*native.Int).Value()
		nCols := args[2].(*native.Int).Value()
		nRows := args[13].(*native.Int).Value()
		dates := args[14].(native.DoubleArray)
		for i := 0; i < nRows; i++ {
			dates[i] = julianDay(time.Date(1990, time.Month(10+i), 1, 0, 0, 0, 0, time.UTC))
		}
		// zone-major: all rows of the first requested zone, then the next
		values := args[15].(native.DoubleArray)
		for zi := 0; zi < nZones; zi++ {
			for r := 0; r < nRows; r++ {
				for c := 0; c < nCols; c++ {
					values[zi*nRows*nCols+r*nCols+c] = float64(100*zi + 10*r + c)
				}
			}
		}
		return 0
	})

	return f, got
}

func openZBudget(t *testing.T, f *fakeEngine) *iwfm.ZBudget {
	t.Helper()
	z, err := iwfm.OpenZBudget(f, "gw.zb")
	require.NoError(t, err)
	return z
}

func northBasinDef(t *testing.T) *iwfm.ZoneDefinition {
	t.Helper()
	def := iwfm.NewZoneDefinition(iwfm.ExtentHorizontal)
	require.NoError(t, def.Add(100, 0, 1))
	require.NoError(t, def.Add(200, 0, 1))
	require.NoError(t, def.Add(300, 0, 2))
	def.Name(1, "North Basin")
	return def
}

func TestZoneDefinitionAdd(t *testing.T) {
	def := iwfm.NewZoneDefinition(iwfm.ExtentHorizontal)

	assert.ErrorIs(t, def.Add(0, 0, 1), iwfm.ErrUnknownID)
	assert.ErrorIs(t, def.Add(100, 0, 0), iwfm.ErrUnknownID)
	assert.Error(t, def.Add(100, 2, 1)) // horizontal takes layer 0

	require.NoError(t, def.Add(100, 0, 1))
	assert.Error(t, def.Add(100, 0, 2)) // already assigned

	vert := iwfm.NewZoneDefinition(iwfm.ExtentVertical)
	assert.ErrorIs(t, vert.Add(100, 0, 1), iwfm.ErrUnknownID)
	require.NoError(t, vert.Add(100, 1, 1))
	require.NoError(t, vert.Add(100, 2, 1)) // same element, other layer
}

func TestGenerateZoneListMarshalsDefinition(t *testing.T) {
	f, got := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	require.NoError(t, z.GenerateZoneList(northBasinDef(t)))

	want := &zoneListCall{
		extent:    int(iwfm.ExtentHorizontal),
		n:         3,
		elements:  []int{100, 200, 300},
		layers:    []int{0, 0, 0},
		zones:     []int{1, 1, 2},
		nNames:    1,
		nameZones: []int{1},
		names:     "North Basin",
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(zoneListCall{})); diff != "" {
		t.Errorf("marshaled zone list mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateZoneListRejectsBadDefinitions(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	empty := iwfm.NewZoneDefinition(iwfm.ExtentHorizontal)
	assert.ErrorIs(t, z.GenerateZoneList(empty), iwfm.ErrEmptySelection)

	orphanName := iwfm.NewZoneDefinition(iwfm.ExtentHorizontal)
	require.NoError(t, orphanName.Add(100, 0, 1))
	orphanName.Name(7, "Ghost")
	assert.ErrorIs(t, z.GenerateZoneList(orphanName), iwfm.ErrUnknownID)

	assert.Equal(t, 0, f.calls[native.ProcZBudgetGenZoneList])
}

func TestZBudgetZones(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	require.NoError(t, z.GenerateZoneList(northBasinDef(t)))

	n, err := z.NZones()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ids, err := z.ZoneIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
	assert.Equal(t, 1, f.calls[native.ProcZBudgetGetZoneIDs])

	names, err := z.ZoneNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"North Basin", "2"}, names)
}

func TestZBudgetTitlesAndHeaders(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	n, err := z.NTitles()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	titles, err := z.Titles(iwfm.Units{Volume: "AC-FT"}, iwfm.DefaultFactors)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZONE BUDGET IN AC-FT"}, titles)

	headers, err := z.ColumnHeadersForZone(1, iwfm.Units{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pumping", "Recharge"}, headers)

	idx, err := z.ColumnIndexForZone(1, "recharge")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = z.ColumnIndexForZone(1, "Nope")
	assert.ErrorIs(t, err, iwfm.ErrUnknownID)

	_, err = z.NColumnsForZone(9)
	assert.ErrorIs(t, err, iwfm.ErrUnknownID)
}

func TestZBudgetTimeSpecs(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	dates, interval, err := z.TimeSpecs()
	require.NoError(t, err)
	assert.Equal(t, []string{"09/30/1990_24:00", "10/31/1990_24:00"}, dates)
	assert.Equal(t, "1MON", interval)
}

func TestZBudgetValuesForSomeZones(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	tables, err := z.ValuesForSomeZones([]int{1, 2}, []int{1, 2},
		"09/30/1990_24:00", "10/31/1990_24:00", "1MON", iwfm.DefaultFactors)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	zone1 := tables[1]
	require.NotNil(t, zone1)
	assert.Equal(t, []string{"Pumping", "Recharge"}, zone1.Columns)
	assert.Equal(t, [][]float64{{0, 1}, {10, 11}}, zone1.Values)
	assert.True(t, zone1.Times[0].Equal(time.Date(1990, time.October, 1, 0, 0, 0, 0, time.UTC)))

	zone2 := tables[2]
	require.NotNil(t, zone2)
	assert.Equal(t, [][]float64{{100, 101}, {110, 111}}, zone2.Values)
}

func TestZBudgetValuesForAZone(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	table, err := z.ValuesForAZone(2, []int{2},
		"09/30/1990_24:00", "10/31/1990_24:00", "1MON", iwfm.DefaultFactors)
	require.NoError(t, err)
	assert.Equal(t, []string{"Recharge"}, table.Columns)
	assert.Equal(t, 2, table.NRows())
}

func TestZBudgetValuesValidation(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	begin, end := "09/30/1990_24:00", "10/31/1990_24:00"

	_, err := z.ValuesForSomeZones(nil, []int{1}, begin, end, "1MON", iwfm.DefaultFactors)
	assert.ErrorIs(t, err, iwfm.ErrEmptySelection)

	_, err = z.ValuesForSomeZones([]int{1}, nil, begin, end, "1MON", iwfm.DefaultFactors)
	assert.ErrorIs(t, err, iwfm.ErrEmptySelection)

	_, err = z.ValuesForSomeZones([]int{9}, []int{1}, begin, end, "1MON", iwfm.DefaultFactors)
	assert.ErrorIs(t, err, iwfm.ErrUnknownID)

	_, err = z.ValuesForSomeZones([]int{1}, []int{1}, begin, end, "1DAY", iwfm.DefaultFactors)
	assert.ErrorIs(t, err, iwfm.ErrIntervalTooFine)

	_, err = z.ValuesForSomeZones([]int{1}, []int{9}, begin, end, "1MON", iwfm.DefaultFactors)
	assert.ErrorIs(t, err, iwfm.ErrUnknownID)

	// rejected selections must never reach the engine's values procedure
	assert.Equal(t, 0, f.calls[native.ProcZBudgetGetValues])
}

func TestZBudgetUseAfterClose(t *testing.T) {
	f, _ := zbudgetFake()
	z := openZBudget(t, f)
	require.NoError(t, z.Close())

	_, err := z.NZones()
	assert.ErrorIs(t, err, iwfm.ErrClosed)
	assert.ErrorIs(t, z.GenerateZoneList(northBasinDef(t)), iwfm.ErrClosed)
}

func TestZoneNamePadding(t *testing.T) {
	f, got := zbudgetFake()
	z := openZBudget(t, f)
	defer z.Close()

	def := iwfm.NewZoneDefinition(iwfm.ExtentVertical)
	require.NoError(t, def.Add(100, 1, 3))
	def.Name(3, strings.Repeat("x", 40)) // wider than the engine slot

	require.NoError(t, z.GenerateZoneList(def))
	assert.Equal(t, strings.Repeat("x", 30), got.names)
	assert.Equal(t, []int{1}, got.layers)
}
