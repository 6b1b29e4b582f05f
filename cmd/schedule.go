package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	rate    float64
	periods int
	present float64
	future  float64
	due     string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "full period-by-period amortization table" }
func (*scheduleCmd) Usage() string {
	return `fin schedule -r <rate> -n <periods> -pv <present> [-fv <future>] [-due end|begin]

  Prints the amortization table: each period's payment split into
  interest and principal, and the balance still outstanding.

Usage Examples:
# a 12-period loan of 1000 at 0.5% per period
$ fin schedule -r 0.005 -n 12 -pv 1000
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.IntVar(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.present, "pv", 0, "Present value to amortize (positive for money received)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := fincalc.Amortize(c.rate, c.periods, c.present, c.future, due, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ScheduleMarkdown(renderer.NewSchedule(s)))
	return subcommands.ExitSuccess
}
