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

// fvCmd holds the flags for the 'fv' subcommand.
type fvCmd struct {
	rate    float64
	periods float64
	payment float64
	present float64
	due     string
}

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "future value of an annuity plus a lump sum" }
func (*fvCmd) Usage() string {
	return `fin fv -r <rate> -n <periods> [-p <payment>] [-pv <present>] [-due end|begin]

  Computes the value after the last period of a stream of periodic
  payments plus a present lump sum, compounding at the per-period rate.

Usage Examples:
# saving 100 per period for 10 periods at 5%
$ fin fv -r 0.05 -n 10 -p -100
`
}

func (c *fvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.payment, "p", 0, "Payment per period (negative when paying out)")
	f.Float64Var(&c.present, "pv", 0, "Present value at the start of the first period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *fvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.FutureValue(c.rate, c.periods, c.payment, c.present, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Future Value", "Future value", fincalc.M(v, *currency).String()).
		With("Rate per period", fincalc.PercentOf(c.rate).String()).
		With("Periods", fnum(c.periods)).
		With("Payment", fincalc.M(c.payment, *currency).String()).
		With("Present value", fincalc.M(c.present, *currency).String()).
		With("Due", due.String())
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
