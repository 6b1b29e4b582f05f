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

// nperCmd holds the flags for the 'nper' subcommand.
type nperCmd struct {
	rate    float64
	payment float64
	present float64
	future  float64
	due     string
}

func (*nperCmd) Name() string     { return "nper" }
func (*nperCmd) Synopsis() string { return "number of periods to amortize a present value" }
func (*nperCmd) Usage() string {
	return `fin nper -r <rate> -p <payment> -pv <present> [-fv <future>] [-due end|begin]

  Computes how many periods the given payment takes to amortize the
  present value down to the future value. The answer is fractional in
  general. Fails when the payment can never amortize the balance.

Usage Examples:
# repaying 1000 at 1% per period with payments of 100
$ fin nper -r 0.01 -p -100 -pv 1000
`
}

func (c *nperCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.payment, "p", 0, "Payment per period (negative when paying out)")
	f.Float64Var(&c.present, "pv", 0, "Present value to amortize (positive for money received)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *nperCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.PeriodCount(c.rate, c.payment, c.present, c.future, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Period Count", "Periods", fmt.Sprintf("%.4f", v)).
		With("Rate per period", fincalc.PercentOf(c.rate).String()).
		With("Payment", fincalc.M(c.payment, *currency).String()).
		With("Present value", fincalc.M(c.present, *currency).String()).
		With("Future value", fincalc.M(c.future, *currency).String()).
		With("Due", due.String())
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
