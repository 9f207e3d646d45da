// cmd/forecast/cmd/monthly.go
// Subcommand: volume produksi per bulan (seperti q_monthly).

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var monthlyCSV bool

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly produced volumes over the horizon",
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().BoolVar(&monthlyCSV, "csv", false, "emit CSV instead of a table")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(cmd *cobra.Command, args []string) error {
	c, err := buildCurve()
	if err != nil {
		return err
	}

	monthly := c.Monthly()

	if monthlyCSV {
		fmt.Println("month,volume")
		for i, v := range monthly {
			fmt.Printf("%d,%g\n", i+1, v)
		}
		return nil
	}

	fmt.Printf("%6s  %16s\n", "month", "volume")
	for i, v := range monthly {
		fmt.Printf("%6d  %16.0f\n", i+1, v)
	}
	return nil
}
