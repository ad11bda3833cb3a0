package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hydrobind/pkg/iwfm"
)

var zbudgetCmd = &cobra.Command{
	Use:   "zbudget",
	Short: "Read zone-budget results files through the engine",
}

var (
	zoneDefFile  string
	zoneExtent   string
	zoneIDs      []int
	zoneColumns  []int
	zoneBegin    string
	zoneEnd      string
	zoneInterval string
	zoneOutDir   string
	zoneFactors  = iwfm.DefaultFactors
)

var zbudgetExportCmd = &cobra.Command{
	Use:   "export [library] [file]",
	Short: "Export zone-budget values to CSV, one file per zone",
	Long: `Submits a zone definition to the engine, fetches the selected columns
for the requested zones over a date range and writes one CSV per zone.

The definition file is CSV with one assignment per line:
  element,layer,zone
Horizontal definitions use layer 0.

Example:
  iwfm zbudget export libIWFM.so GW_ZBud.hdf --def zones.csv --zones 1,2`,
	Args: cobra.ExactArgs(2),
	RunE: runZBudgetExport,
}

func init() {
	zbudgetExportCmd.Flags().StringVar(&zoneDefFile, "def", "", "zone definition CSV: element,layer,zone (required)")
	zbudgetExportCmd.Flags().StringVar(&zoneExtent, "extent", "horizontal", "zone extent: horizontal or vertical")
	zbudgetExportCmd.Flags().IntSliceVar(&zoneIDs, "zones", nil, "zone ids to export (default: all)")
	zbudgetExportCmd.Flags().IntSliceVar(&zoneColumns, "columns", nil, "one-based column numbers (default: all of the first zone)")
	zbudgetExportCmd.Flags().StringVar(&zoneBegin, "begin", "", "range start, MM/DD/YYYY_HH:MM (default: first stored stamp)")
	zbudgetExportCmd.Flags().StringVar(&zoneEnd, "end", "", "range end, MM/DD/YYYY_HH:MM (default: last stored stamp)")
	zbudgetExportCmd.Flags().StringVar(&zoneInterval, "interval", "", "output interval (default: file's native interval)")
	zbudgetExportCmd.Flags().StringVar(&zoneOutDir, "out-dir", ".", "directory for the per-zone CSV files")
	zbudgetExportCmd.Flags().Float64Var(&zoneFactors.Length, "length-factor", 1, "length unit conversion factor")
	zbudgetExportCmd.Flags().Float64Var(&zoneFactors.Area, "area-factor", 1, "area unit conversion factor")
	zbudgetExportCmd.Flags().Float64Var(&zoneFactors.Volume, "volume-factor", 1, "volume unit conversion factor")
	zbudgetExportCmd.MarkFlagRequired("def")

	zbudgetCmd.AddCommand(zbudgetExportCmd)
}

// readZoneDefinition parses an element,layer,zone CSV into a definition.
func readZoneDefinition(path, extent string) (*iwfm.ZoneDefinition, error) {
	var ext iwfm.ZoneExtent
	switch extent {
	case "horizontal":
		ext = iwfm.ExtentHorizontal
	case "vertical":
		ext = iwfm.ExtentVertical
	default:
		return nil, fmt.Errorf("unknown zone extent %q (want horizontal or vertical)", extent)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	def := iwfm.NewZoneDefinition(ext)
	for i, rec := range records {
		if len(rec) != 3 {
			return nil, fmt.Errorf("%s line %d: want element,layer,zone", path, i+1)
		}
		var vals [3]int
		for j, field := range rec {
			v, err := strconv.Atoi(field)
			if err != nil {
				if i == 0 {
					vals[0] = -1 // header line, skip below
					break
				}
				return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
			}
			vals[j] = v
		}
		if vals[0] == -1 {
			continue
		}
		if err := def.Add(vals[0], vals[1], vals[2]); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
	}
	return def, nil
}

func runZBudgetExport(cmd *cobra.Command, args []string) error {
	def, err := readZoneDefinition(zoneDefFile, zoneExtent)
	if err != nil {
		return err
	}

	eng, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	defer eng.Close()

	return iwfm.WithZBudget(eng, args[1], func(z *iwfm.ZBudget) error {
		if err := z.GenerateZoneList(def); err != nil {
			return err
		}
		zones := zoneIDs
		if len(zones) == 0 {
			zones, err = z.ZoneIDs()
			if err != nil {
				return err
			}
		}
		begin, end, interval := zoneBegin, zoneEnd, zoneInterval
		if begin == "" || end == "" || interval == "" {
			dates, stored, err := z.TimeSpecs()
			if err != nil {
				return err
			}
			if len(dates) == 0 {
				return fmt.Errorf("zone-budget file has no stored time steps")
			}
			if begin == "" {
				begin = dates[0]
			}
			if end == "" {
				end = dates[len(dates)-1]
			}
			if interval == "" {
				interval = stored
			}
		}
		columns := zoneColumns
		if len(columns) == 0 {
			n, err := z.NColumnsForZone(zones[0])
			if err != nil {
				return err
			}
			for c := 1; c <= n; c++ {
				columns = append(columns, c)
			}
		}

		logger.Info("exporting zone-budget values",
			zap.Ints("zones", zones),
			zap.Ints("columns", columns),
			zap.String("begin", begin),
			zap.String("end", end),
			zap.String("interval", interval))

		tables, err := z.ValuesForSomeZones(zones, columns, begin, end, interval, zoneFactors)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(zoneOutDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", zoneOutDir, err)
		}
		for _, id := range zones {
			path := filepath.Join(zoneOutDir, fmt.Sprintf("zone_%d.csv", id))
			if err := writeTableCSV(path, tables[id]); err != nil {
				return err
			}
			fmt.Println("wrote", path)
		}
		return nil
	})
}
