// Package cmd implements the CLI application exposing the fincalc
// formulas as subcommands.
package cmd

import (
	"flag"
	"strconv"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&pvCmd{}, "formulas")
	c.Register(&fvCmd{}, "formulas")
	c.Register(&pmtCmd{}, "formulas")
	c.Register(&nperCmd{}, "formulas")

	c.Register(&ipmtCmd{}, "loans")
	c.Register(&ppmtCmd{}, "loans")
	c.Register(&scheduleCmd{}, "loans")

	c.Register(&rateCmd{}, "rates")
	c.Register(&effectCmd{}, "rates")
	c.Register(&nominalCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", "USD", "Currency used to format monetary amounts")

// fnum formats a number the shortest way that round trips.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
