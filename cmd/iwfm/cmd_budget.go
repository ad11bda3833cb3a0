package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hydrobind/internal/calendar"
	"hydrobind/pkg/iwfm"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Read budget results files through the engine",
}

var budgetLocationsCmd = &cobra.Command{
	Use:   "locations [library] [file]",
	Short: "List the locations in a budget results file",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetLocations,
}

var (
	exportLocation string
	exportColumns  []int
	exportBegin    string
	exportEnd      string
	exportInterval string
	exportOut      string
	exportFactors  = iwfm.DefaultFactors
)

var budgetExportCmd = &cobra.Command{
	Use:   "export [library] [file]",
	Short: "Export budget values for one location to CSV",
	Long: `Fetches the selected columns of one budget location over a date range
and writes them as CSV. Dates use the engine's MM/DD/YYYY_HH:MM format;
begin, end and interval default to the file's own time specs.

Example:
  iwfm budget export libIWFM.so GW.hdf --location "Region1 (SR1)" --columns 1,3`,
	Args: cobra.ExactArgs(2),
	RunE: runBudgetExport,
}

func init() {
	budgetExportCmd.Flags().StringVar(&exportLocation, "location", "", "location name or one-based number (required)")
	budgetExportCmd.Flags().IntSliceVar(&exportColumns, "columns", nil, "one-based column numbers (default: all)")
	budgetExportCmd.Flags().StringVar(&exportBegin, "begin", "", "range start, MM/DD/YYYY_HH:MM (default: first stored stamp)")
	budgetExportCmd.Flags().StringVar(&exportEnd, "end", "", "range end, MM/DD/YYYY_HH:MM (default: last stored stamp)")
	budgetExportCmd.Flags().StringVar(&exportInterval, "interval", "", "output interval (default: file's native interval)")
	budgetExportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	budgetExportCmd.Flags().Float64Var(&exportFactors.Length, "length-factor", 1, "length unit conversion factor")
	budgetExportCmd.Flags().Float64Var(&exportFactors.Area, "area-factor", 1, "area unit conversion factor")
	budgetExportCmd.Flags().Float64Var(&exportFactors.Volume, "volume-factor", 1, "volume unit conversion factor")
	budgetExportCmd.MarkFlagRequired("location")

	budgetCmd.AddCommand(budgetLocationsCmd)
	budgetCmd.AddCommand(budgetExportCmd)
}

func runBudgetLocations(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	defer eng.Close()

	return iwfm.WithBudget(eng, args[1], func(b *iwfm.Budget) error {
		names, err := b.Locations()
		if err != nil {
			return err
		}
		for i, name := range names {
			n, err := b.NColumns(i + 1)
			if err != nil {
				return err
			}
			fmt.Printf("%3d  %s (%d columns)\n", i+1, name, n)
		}
		return nil
	})
}

// resolveLocation accepts either a display name or a one-based location
// number.
func resolveLocation(b *iwfm.Budget, arg string) (int, error) {
	idx, err := b.LocationIndex(arg)
	if err == nil {
		return idx, nil
	}
	if !errors.Is(err, iwfm.ErrUnknownID) {
		return 0, err
	}
	if n, convErr := strconv.Atoi(arg); convErr == nil {
		return n, nil
	}
	return 0, err
}

func runBudgetExport(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	defer eng.Close()

	return iwfm.WithBudget(eng, args[1], func(b *iwfm.Budget) error {
		location, err := resolveLocation(b, exportLocation)
		if err != nil {
			return err
		}
		begin, end, interval := exportBegin, exportEnd, exportInterval
		if begin == "" || end == "" || interval == "" {
			dates, stored, err := b.TimeSpecs()
			if err != nil {
				return err
			}
			if len(dates) == 0 {
				return fmt.Errorf("budget file has no stored time steps")
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
		columns := exportColumns
		if len(columns) == 0 {
			n, err := b.NColumns(location)
			if err != nil {
				return err
			}
			for c := 1; c <= n; c++ {
				columns = append(columns, c)
			}
		}

		logger.Info("exporting budget values",
			zap.Int("location", location),
			zap.Ints("columns", columns),
			zap.String("begin", begin),
			zap.String("end", end),
			zap.String("interval", interval))

		table, err := b.Values(location, columns, begin, end, interval, exportFactors)
		if err != nil {
			return err
		}
		return writeTableCSV(exportOut, table)
	})
}

// writeTableCSV renders a result table as CSV, timestamps in the engine's
// own date format.
func writeTableCSV(path string, table *iwfm.Table) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"Time"}, table.Columns...)); err != nil {
		return err
	}
	row := make([]string, 1+len(table.Columns))
	for i, ts := range table.Times {
		row[0] = calendar.Format(ts)
		for j, v := range table.Values[i] {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
