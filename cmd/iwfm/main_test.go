package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrobind/pkg/iwfm"
)

func TestReadZoneDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"element,layer,zone\n100,0,1\n200,0,1\n300,0,2\n"), 0o644))

	def, err := readZoneDefinition(path, "horizontal")
	require.NoError(t, err)
	require.NotNil(t, def)

	// the header line must have been skipped, the assignments kept
	assert.Error(t, def.Add(100, 0, 2))
	assert.NoError(t, def.Add(400, 0, 2))
}

func TestReadZoneDefinitionErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readZoneDefinition(filepath.Join(dir, "absent.csv"), "horizontal")
	assert.Error(t, err)

	path := filepath.Join(dir, "zones.csv")
	require.NoError(t, os.WriteFile(path, []byte("100,0,1\n"), 0o644))
	_, err = readZoneDefinition(path, "diagonal")
	assert.ErrorContains(t, err, "diagonal")

	dup := filepath.Join(dir, "dup.csv")
	require.NoError(t, os.WriteFile(dup, []byte("100,0,1\n100,0,2\n"), 0o644))
	_, err = readZoneDefinition(dup, "horizontal")
	assert.ErrorContains(t, err, "line 2")
}

func TestWriteTableCSV(t *testing.T) {
	table := &iwfm.Table{
		Times: []time.Time{
			time.Date(1990, time.October, 1, 0, 0, 0, 0, time.UTC),
			time.Date(1990, time.November, 1, 0, 0, 0, 0, time.UTC),
		},
		Columns: []string{"Percolation", "Ending Storage"},
		Values:  [][]float64{{1.5, 2.5}, {3.5, 4.5}},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeTableCSV(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Time,Percolation,Ending Storage\n"+
			"09/30/1990_24:00,1.5,2.5\n"+
			"10/31/1990_24:00,3.5,4.5\n",
		string(data))
}
