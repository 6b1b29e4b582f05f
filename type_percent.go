package fincalc

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent points, for display. A
// fractional rate of 0.05 is the Percent 5.
type Percent float64

// PercentOf converts a fractional rate (0.05) to a Percent (5%).
func PercentOf(rate float64) Percent { return Percent(100 * rate) }

// percentPrecision is half the last digit String prints: two percents
// closer than this render identically at four decimals.
const percentPrecision = 0.00005

// Equal reports whether p and q agree to the displayed precision.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < percentPrecision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.4f%%", float64(p))
}

// SignedString returns the percent with an explicit sign. 0 is
// represented as a "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.4f%%", float64(p))
	if res == "+0.0000%" {
		return "-"
	}
	return res
}
