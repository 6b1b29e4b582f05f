package fincalc

import (
	"fmt"
	"math"
)

const (
	// DefaultGuess is the conventional starting estimate for Rate.
	DefaultGuess = 0.01

	rateTolerance = 1e-10
	rateMaxIter   = 50
	// Below this magnitude the residual switches to its linear
	// expansion, to avoid dividing by a near-zero rate.
	rateLinearBound = 1e-10
)

// rateResidual evaluates present*f + payment*(1/rate+due)*(f-1) + future
// with f = (1+rate)^periods, the quantity Rate drives to zero.
func rateResidual(rate, periods, payment, present, future float64, due Timing) float64 {
	if math.Abs(rate) < rateLinearBound {
		return present*(1+rate*periods) + payment*(1+rate*float64(due))*periods + future
	}
	f := math.Pow(1+rate, periods)
	return present*f + payment*(1/rate+float64(due))*(f-1) + future
}

// rateBracket tracks two evaluated points whose residuals straddle
// zero. The residual is wildly convex in rate, so an unguarded secant
// step can overshoot far past the root and oscillate; once a sign
// change has been seen the root is pinned between a and b, and steps
// outside that interval are replaced by its midpoint.
type rateBracket struct {
	a, ya  float64
	b, yb  float64
	seeded bool
	full   bool
}

// admit records an evaluated point, keeping one endpoint of each sign
// once both have been seen.
func (br *rateBracket) admit(x, y float64) {
	if math.IsNaN(y) {
		return
	}
	switch {
	case !br.seeded:
		br.a, br.ya, br.seeded = x, y, true
	case !br.full && (y < 0) != (br.ya < 0):
		br.b, br.yb, br.full = x, y, true
	case (y < 0) == (br.ya < 0):
		br.a, br.ya = x, y
	default:
		br.b, br.yb = x, y
	}
}

// clamp returns the bracket midpoint when x falls outside of it, and x
// unchanged when no bracket exists yet.
func (br *rateBracket) clamp(x float64) float64 {
	if !br.full {
		return x
	}
	lo, hi := br.a, br.b
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(x) || x <= lo || x >= hi {
		return (br.a + br.b) / 2
	}
	return x
}

// Rate finds the per-period interest rate implied by a cash-flow
// schedule of periods payments of payment, a present value and a
// future value. There is no closed form; a secant iteration starts
// from rate 0 and guess (DefaultGuess when in doubt) and stops once
// two successive residuals agree within tolerance. Once the iteration
// has seen residuals of both signs, steps are confined to that
// bracket, so a guess within an order of magnitude of the true rate
// converges well inside the iteration budget.
//
// The underlying equation may have zero, one or several roots
// depending on the sign pattern of the cash flows, so the result
// depends on guess. When the iteration budget runs out before the
// tolerance is met, Rate returns an error wrapping ErrNoConvergence
// rather than an unconverged estimate.
func Rate(periods, payment, present, future float64, due Timing, guess float64) (float64, error) {
	if err := checkFinite("Rate", periods, payment, present, future, guess); err != nil {
		return 0, err
	}
	// Two evolving (estimate, residual) pairs: rate 0 with its linear
	// residual, and the caller's guess.
	x0, y0 := 0.0, present+payment*periods+future
	x1, y1 := guess, rateResidual(guess, periods, payment, present, future, due)
	var br rateBracket
	br.admit(x0, y0)
	br.admit(x1, y1)
	rate := guess

	for i := 0; i < rateMaxIter; i++ {
		if math.Abs(y1-y0) <= rateTolerance {
			return rate, nil
		}
		rate = br.clamp((y1*x0 - y0*x1) / (y1 - y0))
		y := rateResidual(rate, periods, payment, present, future, due)
		br.admit(rate, y)
		x0, y0 = x1, y1
		x1, y1 = rate, y
	}
	if math.Abs(y1-y0) <= rateTolerance {
		return rate, nil
	}
	return 0, fmt.Errorf("Rate: no root found after %d iterations: %w", rateMaxIter, ErrNoConvergence)
}
