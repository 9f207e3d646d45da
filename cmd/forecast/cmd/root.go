// cmd/forecast/cmd/root.go
// CLI kolaborator: hitung forecast Arps dan cetak deret ke stdout.
// Core tidak pernah mencetak; semua output & pelaporan error ada di sini.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dca-oilgas/internal/decline"
)

var (
	flagQi     float64
	flagD      float64
	flagB      float64
	flagDlim   float64
	flagYears  float64
	flagPoints int
	flagCSV    bool
)

var rootCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Arps decline-curve forecast for a single well",
	Long: `Computes an Arps hyperbolic/exponential production forecast.

Supply the initial rate (qi, unit per day), initial effective secant
decline (d, 1/year), hyperbolic exponent (b), limiting effective decline
(dlim, 1/year) and horizon (years). Prints t (years), rate and cumulative
volume per sample.`,
	RunE:          runForecast,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagQi, "qi", 0, "initial rate, bbl/day or scf/day (required)")
	pf.Float64Var(&flagD, "d", 0, "initial effective secant decline, 1/year, in [0,1)")
	pf.Float64Var(&flagB, "b", 0, "hyperbolic exponent (0 = exponential, 1 = harmonic)")
	pf.Float64Var(&flagDlim, "dlim", 0, "limiting effective decline, 1/year")
	pf.Float64Var(&flagYears, "years", 0, "forecast horizon, years (required)")
	rootCmd.Flags().IntVar(&flagPoints, "points", 121, "number of samples over the horizon")
	rootCmd.Flags().BoolVar(&flagCSV, "csv", false, "emit CSV instead of a table")
	_ = rootCmd.MarkPersistentFlagRequired("qi")
	_ = rootCmd.MarkPersistentFlagRequired("years")
}

func buildCurve() (*decline.Curve, error) {
	return decline.NewCurve(decline.Params{
		Qi: flagQi, D: flagD, B: flagB, Dlim: flagDlim, Years: flagYears,
	})
}

func runForecast(cmd *cobra.Command, args []string) error {
	c, err := buildCurve()
	if err != nil {
		return err
	}

	pts, err := c.Forecast(flagPoints)
	if err != nil {
		return err
	}

	if flagCSV {
		fmt.Println("t_years,rate,cum")
		for _, p := range pts {
			fmt.Printf("%g,%g,%g\n", p.T, p.Rate, p.Cum)
		}
		return nil
	}

	if tlim, ok := c.TLim(); ok && tlim < c.Years() {
		fmt.Fprintf(os.Stderr, "transition to exponential decline at %.3f years\n", tlim)
	}
	fmt.Printf("%10s  %14s  %16s\n", "t (years)", "rate", "cumulative")
	for _, p := range pts {
		fmt.Printf("%10.3f  %14.2f  %16.0f\n", p.T, p.Rate, p.Cum)
	}
	return nil
}
