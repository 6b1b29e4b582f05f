package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestBadTimingIsUsageError(t *testing.T) {
	// Every annuity command validates -due before computing.
	commands := []subcommands.Command{
		&pvCmd{due: "middle"},
		&fvCmd{due: "middle"},
		&pmtCmd{due: "middle"},
		&ipmtCmd{due: "middle"},
		&ppmtCmd{due: "middle"},
		&nperCmd{due: "middle"},
		&rateCmd{due: "middle"},
		&scheduleCmd{due: "middle"},
	}
	for _, c := range commands {
		t.Run(c.Name(), func(t *testing.T) {
			got := c.Execute(context.Background(), flag.NewFlagSet(c.Name(), flag.ContinueOnError))
			if got != subcommands.ExitUsageError {
				t.Errorf("Execute() = %v, want ExitUsageError", got)
			}
		})
	}
}

func TestDomainFailureIsFailure(t *testing.T) {
	// A payment of 0 at zero periods has no amortizing schedule.
	c := &pmtCmd{due: "end"}
	if got := c.Execute(context.Background(), flag.NewFlagSet("pmt", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Errorf("pmt with zero periods: Execute() = %v, want ExitFailure", got)
	}

	s := &scheduleCmd{due: "end"}
	if got := s.Execute(context.Background(), flag.NewFlagSet("schedule", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Errorf("schedule with zero periods: Execute() = %v, want ExitFailure", got)
	}
}

func TestUnknownTopicIsFailure(t *testing.T) {
	c := &topicCmd{}
	f := flag.NewFlagSet("topic", flag.ContinueOnError)
	if err := f.Parse([]string{"does-not-exist"}); err != nil {
		t.Fatalf("flag parse: %v", err)
	}
	if got := c.Execute(context.Background(), f); got != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", got)
	}
}
