package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hydrobind/internal/calendar"
	"hydrobind/pkg/iwfm"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Work with engine timestamps and interval labels",
}

var datesValidateCmd = &cobra.Command{
	Use:   "validate [date]...",
	Short: "Check timestamps against the MM/DD/YYYY_HH:MM format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bad := 0
		for _, d := range args {
			if err := calendar.Validate(d); err != nil {
				bad++
				fmt.Printf("invalid  %s: %v\n", d, err)
				continue
			}
			fmt.Printf("valid    %s\n", d)
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d dates invalid", bad, len(args))
		}
		return nil
	},
}

var compareLibrary string

var datesCompareCmd = &cobra.Command{
	Use:   "compare [first] [second]",
	Short: "Report whether the first timestamp is later than the second",
	Long: `Delegates the comparison to the engine so the 24:00 end-of-day
convention is honored. Requires a loaded engine library.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(compareLibrary)
		if err != nil {
			return err
		}
		defer eng.Close()

		later, err := iwfm.IsDateGreater(eng, args[0], args[1])
		if err != nil {
			return err
		}
		if later {
			fmt.Printf("%s > %s\n", args[0], args[1])
		} else {
			fmt.Printf("%s <= %s\n", args[0], args[1])
		}
		return nil
	},
}

var datesIntervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "List the recognized interval labels, finest to coarsest",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, label := range calendar.Intervals {
			fmt.Println(label)
		}
		return nil
	},
}

func init() {
	datesCompareCmd.Flags().StringVar(&compareLibrary, "library", "", "engine library path (default: configured library)")

	datesCmd.AddCommand(datesValidateCmd)
	datesCmd.AddCommand(datesCompareCmd)
	datesCmd.AddCommand(datesIntervalsCmd)
}
