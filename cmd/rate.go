package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	periods float64
	payment float64
	present float64
	future  float64
	due     string
	guess   float64
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "per-period rate implied by a cash-flow schedule" }
func (*rateCmd) Usage() string {
	return `fin rate -n <periods> -p <payment> -pv <present> [-fv <future>] [-due end|begin] [-guess <rate>]

  Solves for the per-period interest rate implied by the schedule.
  There is no closed form; the solver iterates from the guess and fails
  explicitly when it cannot converge. See 'fin topic rate'.

Usage Examples:
# rate implied by 360 payments of 600 on a 100k loan
$ fin rate -n 360 -p -600 -pv 100000
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.periods, "n", 0, "Number of periods")
	f.Float64Var(&c.payment, "p", 0, "Payment per period (negative when paying out)")
	f.Float64Var(&c.present, "pv", 0, "Present value (positive for money received)")
	f.Float64Var(&c.future, "fv", 0, "Future value remaining after the last period")
	f.StringVar(&c.due, "due", fincalc.OrdinaryAnnuity.String(), "Payment timing (end, begin)")
	f.Float64Var(&c.guess, "guess", fincalc.DefaultGuess, "Starting estimate for the iteration")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := fincalc.ParseTiming(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timing: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := fincalc.Rate(c.periods, c.payment, c.present, c.future, due, c.guess)
	if errors.Is(err, fincalc.ErrNoConvergence) {
		fmt.Fprintf(os.Stderr, "Error: %v (retry with a -guess closer to the expected rate)\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Implied Rate", "Rate per period", fincalc.PercentOf(v).String()).
		With("Periods", fnum(c.periods)).
		With("Payment", fincalc.M(c.payment, *currency).String()).
		With("Present value", fincalc.M(c.present, *currency).String()).
		With("Future value", fincalc.M(c.future, *currency).String()).
		With("Due", due.String()).
		With("Guess", fnum(c.guess))
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
