package iwfm

import (
	"fmt"
	"time"
)

// Table is a time-indexed result set: one row per time step, one column
// per requested series.
type Table struct {
	Times   []time.Time
	Columns []string
	Values  [][]float64 // row-major: Values[row][col]
}

// Column returns the series with the given header.
func (t *Table) Column(name string) ([]float64, error) {
	for j, c := range t.Columns {
		if c == name {
			out := make([]float64, len(t.Values))
			for i, row := range t.Values {
				out[i] = row[j]
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: column %q", ErrUnknownID, name)
}

// NRows returns the number of time steps in the table.
func (t *Table) NRows() int { return len(t.Times) }

// The engine emits result timestamps as fractional days since the
// spreadsheet epoch (December 30, 1899).
var julianEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func julianToTime(d float64) time.Time {
	return julianEpoch.Add(time.Duration(d * float64(24*time.Hour)))
}

// assembleTable builds a Table from the engine's raw outputs: julian
// timestamps and a flat row-major value matrix.
func assembleTable(columns []string, dates []float64, flat []float64) *Table {
	nRows, nCols := len(dates), len(columns)
	t := &Table{
		Times:   make([]time.Time, nRows),
		Columns: columns,
		Values:  make([][]float64, nRows),
	}
	for i := 0; i < nRows; i++ {
		t.Times[i] = julianToTime(dates[i])
		row := make([]float64, nCols)
		copy(row, flat[i*nCols:(i+1)*nCols])
		t.Values[i] = row
	}
	return t
}
