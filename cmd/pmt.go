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

// pmtCmd holds the flags for the 'pmt' subcommand.
type pmtCmd struct {
	rate    float64
	periods float64
	present float64
	future  float64
	due     string
}

func (*pmtCmd) Name() string     { return "pmt" }
func (*pmtCmd) Synopsis() string { return "periodic payment amortizing a present value" }
func (*pmtCmd) Usage() string {
	return `fin pmt -r <rate> -n <periods> -pv <present> [-fv <future>] [-due end|begin]

  Computes the constant payment that amortizes the present value down
  to the future value over the given number of periods.

Usage Examples:
# 30-year mortgage on 100k at 6% annual
$ fin pmt -r 0.005 -n 360 -pv 100000
`
}

func (c *pmtCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Interest rate per period, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.present, "pv", 0, "Present value to amortize (positive for money received)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
}

func (c *pmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.Payment(c.rate, c.periods, c.present, c.future, due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Payment", "Payment per period", fincalc.M(v, *currency).String()).
		With("Rate per period", fincalc.PercentOf(c.rate).String()).
		With("Periods", fnum(c.periods)).
		With("Present value", fincalc.M(c.present, *currency).String()).
		With("Future value", fincalc.M(c.future, *currency).String()).
		With("Due", due.String())
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
