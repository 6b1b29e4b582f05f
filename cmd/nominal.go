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

// nominalCmd holds the flags for the 'nominal' subcommand.
type nominalCmd struct {
	effective float64
	periods   float64
}

func (*nominalCmd) Name() string     { return "nominal" }
func (*nominalCmd) Synopsis() string { return "nominal annual rate behind an effective rate" }
func (*nominalCmd) Usage() string {
	return `fin nominal -r <effective> -k <periods per year>

  Computes the stated annual rate that, compounded k times per year,
  realizes the given effective annual rate. k is truncated to an
  integer.

Usage Examples:
# effective 5.12% realized with monthly compounding
$ fin nominal -r 0.0512 -k 12
`
}

func (c *nominalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.effective, "r", 0, "Effective annual rate, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.periods, "k", 12, "Compounding periods per year")
}

func (c *nominalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := fincalc.NominalRate(c.effective, c.periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Nominal Rate", "Nominal annual rate", fincalc.PercentOf(v).String()).
		With("Effective annual rate", fincalc.PercentOf(c.effective).String()).
		With("Periods per year", fnum(c.periods))
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
