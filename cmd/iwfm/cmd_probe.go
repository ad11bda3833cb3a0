package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"hydrobind/internal/native"
)

var probeMissingOnly bool

// probeCmd loads a library and reports which capability-table entries it
// exports.
var probeCmd = &cobra.Command{
	Use:   "probe [library]",
	Short: "Report which engine procedures a library exports",
	Long: `Loads the shared library, resolves the full capability table against
its exports and prints one line per procedure. Missing procedures are a
compatibility report, not an error: older engine builds lack newer entry
points.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeMissingOnly, "missing", false, "only list procedures the library does not export")
}

func runProbe(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	defer eng.Close()

	ids := make([]native.ProcID, 0, len(native.Procs))
	for id := range native.Procs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return native.Procs[ids[i]].Symbol < native.Procs[ids[j]].Symbol
	})

	fmt.Printf("Engine version: %s\n", eng.Version())
	available, missing := 0, 0
	for _, id := range ids {
		spec := native.Procs[id]
		if eng.Has(id) {
			available++
			if !probeMissingOnly {
				fmt.Printf("  ok      %-45s\n", spec.Symbol)
			}
			continue
		}
		missing++
		fmt.Printf("  missing %-45s (requires %s)\n", spec.Symbol, spec.MinVersion)
	}
	fmt.Printf("%d of %d procedures available\n", available, available+missing)
	return nil
}
