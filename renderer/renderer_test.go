package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fincalc"
)

func TestScheduleMarkdown(t *testing.T) {
	s, err := fincalc.Amortize(0.005, 3, 1000, 0, fincalc.OrdinaryAnnuity, "USD")
	if err != nil {
		t.Fatalf("Amortize() returned unexpected error: %v", err)
	}
	md := ScheduleMarkdown(NewSchedule(s))

	for _, want := range []string{
		"# Amortization Schedule",
		"over 3 periods",
		"0.5000% per period",
		"at the end of each period",
		"| 1 |",
		"| 3 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("schedule markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("schedule markdown contains a template error:\n%s", md)
	}
	// One table row per period plus the header row.
	if got := strings.Count(md, "\n| "); got != 3+1 {
		t.Errorf("got %d table lines, want 4:\n%s", got, md)
	}
}

func TestResultMarkdown(t *testing.T) {
	r := NewResult("Present Value", "Present value", "$24,659.21").
		With("Rate per period", "0.6667%").
		With("Periods", "60").
		With("Payment", "-$500.00")
	md := ResultMarkdown(r)

	for _, want := range []string{
		"# Present Value",
		"| Rate per period | 0.6667% |",
		"| Periods | 60 |",
		"**Present value: $24,659.21**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("result markdown missing %q:\n%s", want, md)
		}
	}
}

func TestResultMarkdownWithoutInputs(t *testing.T) {
	md := ResultMarkdown(NewResult("Effective Rate", "Effective annual rate", "5.1162%"))
	if strings.Contains(md, "| Input |") {
		t.Errorf("inputs table should be omitted when empty:\n%s", md)
	}
	if !strings.Contains(md, "**Effective annual rate: 5.1162%**") {
		t.Errorf("result markdown missing value line:\n%s", md)
	}
}
