package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fincalc/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when the shell's completion
	// machinery invokes the binary. Install with: COMP_INSTALL=1 fin
	complete.Complete("fin", completer())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	due := predict.Set{"end", "begin"}
	annuity := map[string]complete.Predictor{
		"r": predict.Nothing, "n": predict.Nothing, "p": predict.Nothing,
		"pv": predict.Nothing, "fv": predict.Nothing, "due": due,
	}
	split := map[string]complete.Predictor{
		"r": predict.Nothing, "per": predict.Nothing, "n": predict.Nothing,
		"pv": predict.Nothing, "fv": predict.Nothing, "due": due,
	}
	annual := map[string]complete.Predictor{"r": predict.Nothing, "k": predict.Nothing}

	return &complete.Command{
		Flags: map[string]complete.Predictor{"currency": predict.Nothing},
		Sub: map[string]*complete.Command{
			"pv":       {Flags: annuity},
			"fv":       {Flags: annuity},
			"pmt":      {Flags: annuity},
			"nper":     {Flags: annuity},
			"ipmt":     {Flags: split},
			"ppmt":     {Flags: split},
			"schedule": {Flags: annuity},
			"rate":     {Flags: annuity},
			"effect":   {Flags: annual},
			"nominal":  {Flags: annual},
			"topic":    {Args: predict.Set{"readme", "conventions", "functions", "rate"}},
		},
	}
}
