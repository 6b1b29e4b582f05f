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

// ipmtCmd holds the flags for the 'ipmt' subcommand.
type ipmtCmd struct {
	rate    float64
	period  int
	periods float64
	present float64
	future  float64
	due     string
}

func (*ipmtCmd) Name() string     { return "ipmt" }
func (*ipmtCmd) Synopsis() string { return "interest portion of one payment of a schedule" }
func (*ipmtCmd) Usage() string {
	return `fin ipmt -r <rate> -per <period> -n <periods> -pv <present> [-fv <future>] [-due end|begin]

  Computes the interest portion of payment number <period> (1-indexed):
  the balance outstanding when that period opens, times the rate.

Usage Examples:
# interest share of the first payment of a 24-month loan
$ fin ipmt -r 0.008333 -per 1 -n 24 -pv 2000
`
}

func (c *ipmtCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.IntVar(&c.period, "per", 1, "Payment number to split, 1-indexed")
	f.Float64Var(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.present, "pv", 0, "Present value to amortize (positive for money received)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *ipmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.InterestPayment(c.rate, c.period, c.periods, c.present, c.future, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Interest Payment", "Interest portion", fincalc.M(v, *currency).String()).
		With("Rate per period", fincalc.PercentOf(c.rate).String()).
		With("Period", fmt.Sprintf("%d of %s", c.period, fnum(c.periods))).
		With("Present value", fincalc.M(c.present, *currency).String()).
		With("Future value", fincalc.M(c.future, *currency).String()).
		With("Due", due.String())
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
