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

// pvCmd holds the flags for the 'pv' subcommand.
type pvCmd struct {
	rate    float64
	periods float64
	payment float64
	future  float64
	due     string
}

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "present value of an annuity plus a lump sum" }
func (*pvCmd) Usage() string {
	return `fin pv -r <rate> -n <periods> [-p <payment>] [-fv <future>] [-due end|begin]

  Computes the value today equivalent to a stream of periodic payments
  plus a future lump sum, discounted at the per-period rate.

Usage Examples:
# 60 monthly payments of 500 at 8% annual
$ fin pv -r 0.0066667 -n 60 -p -500
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.payment, "p", 0, "Payment per period (negative when paying out)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *pvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.PresentValue(c.rate, c.periods, c.payment, c.future, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Present Value", "Present value", fincalc.M(v, *currency).String()).
		With("Rate per period", fincalc.PercentOf(c.rate).String()).
		With("Periods", fnum(c.periods)).
		With("Payment", fincalc.M(c.payment, *currency).String()).
		With("Future value", fincalc.M(c.future, *currency).String()).
		With("Due", due.String())
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
