package fincalc

import "fmt"

// Timing defines when the periodic payment falls within a period.
type Timing int

const (
	// OrdinaryAnnuity pays at the end of each period.
	OrdinaryAnnuity Timing = iota
	// AnnuityDue pays at the beginning of each period.
	AnnuityDue
)

func (t Timing) String() string {
	switch t {
	case OrdinaryAnnuity:
		return "end"
	case AnnuityDue:
		return "begin"
	default:
		return "unknown"
	}
}

// ParseTiming parses a string into a Timing. It accepts the spreadsheet
// numeric form ("0", "1") as well as "end" and "begin".
func ParseTiming(s string) (Timing, error) {
	switch s {
	case "end", "0":
		return OrdinaryAnnuity, nil
	case "begin", "1":
		return AnnuityDue, nil
	default:
		return 0, fmt.Errorf("unknown payment timing: %q", s)
	}
}

// factor is the annuity timing multiplier 1+rate for due payments, 1 otherwise.
func (t Timing) factor(rate float64) float64 {
	if t == AnnuityDue {
		return 1 + rate
	}
	return 1
}
