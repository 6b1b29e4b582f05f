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

// effectCmd holds the flags for the 'effect' subcommand.
type effectCmd struct {
	nominal float64
	periods float64
}

func (*effectCmd) Name() string     { return "effect" }
func (*effectCmd) Synopsis() string { return "effective annual rate of a nominal rate" }
func (*effectCmd) Usage() string {
	return `fin effect -r <nominal> -k <periods per year>

  Computes the annual rate actually realized when the nominal annual
  rate compounds k times per year. k is truncated to an integer.

Usage Examples:
# 5% nominal compounded monthly
$ fin effect -r 0.05 -k 12
`
}

func (c *effectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.nominal, "r", 0, "Nominal annual rate, as a fraction (0.05 for 5%)")
	f.Float64Var(&c.periods, "k", 12, "Compounding periods per year")
}

func (c *effectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := fincalc.EffectiveRate(c.nominal, c.periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := renderer.NewResult("Effective Rate", "Effective annual rate", fincalc.PercentOf(v).String()).
		With("Nominal annual rate", fincalc.PercentOf(c.nominal).String()).
		With("Periods per year", fnum(c.periods))
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
