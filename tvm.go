package fincalc

import (
	"fmt"
	"math"
)

// This file holds the closed-form time-value-of-money formulas. They
// all share the spreadsheet cash-flow convention: money paid out is
// negative, money received is positive, and `due` shifts the annuity
// from period-end to period-start payments.

// checkFinite rejects NaN and infinite arguments before any arithmetic.
func checkFinite(fn string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: non-finite argument %v: %w", fn, v, ErrDomain)
		}
	}
	return nil
}

// checkRate rejects rates at or below -1, where the compounding factor
// (1+rate)^periods degenerates or leaves the real domain.
func checkRate(fn string, rate float64) error {
	if rate <= -1 {
		return fmt.Errorf("%s: rate %v must be greater than -1: %w", fn, rate, ErrDomain)
	}
	return nil
}

// PresentValue returns the value today equivalent to an annuity of
// payment over periods periods plus a future lump sum, discounted at
// rate per period. At rate 0 cash accumulates linearly:
// -payment*periods - future.
func PresentValue(rate, periods, payment, future float64, due Timing) (float64, error) {
	if err := checkFinite("PresentValue", rate, periods, payment, future); err != nil {
		return 0, err
	}
	if rate == 0 {
		return -payment*periods - future, nil
	}
	if err := checkRate("PresentValue", rate); err != nil {
		return 0, err
	}
	f := math.Pow(1+rate, periods)
	return -(payment*due.factor(rate)*(f-1)/rate + future) / f, nil
}

// FutureValue returns the value after periods periods of an annuity of
// payment plus a present lump sum compounding at rate per period.
// Due payments earn one extra period of interest each.
func FutureValue(rate, periods, payment, present float64, due Timing) (float64, error) {
	if err := checkFinite("FutureValue", rate, periods, payment, present); err != nil {
		return 0, err
	}
	if rate == 0 {
		return -(present + payment*periods), nil
	}
	if err := checkRate("FutureValue", rate); err != nil {
		return 0, err
	}
	f := math.Pow(1+rate, periods)
	return -(present*f + payment*due.factor(rate)*(f-1)/rate), nil
}

// Payment returns the constant periodic payment that amortizes present
// down to future over periods periods at rate per period.
func Payment(rate, periods, present, future float64, due Timing) (float64, error) {
	if err := checkFinite("Payment", rate, periods, present, future); err != nil {
		return 0, err
	}
	if periods == 0 {
		return 0, fmt.Errorf("Payment: zero periods: %w", ErrDomain)
	}
	if rate == 0 {
		return -(present + future) / periods, nil
	}
	if err := checkRate("Payment", rate); err != nil {
		return 0, err
	}
	f := math.Pow(1+rate, periods)
	den := due.factor(rate) * (f - 1)
	if den == 0 {
		return 0, fmt.Errorf("Payment: degenerate annuity factor at rate %v over %v periods: %w", rate, periods, ErrDomain)
	}
	return -(present*f + future) * rate / den, nil
}

// InterestPayment returns the interest portion of payment number period
// (1-indexed). It is the balance outstanding when the period opens,
// multiplied by the rate. A due annuity pays before any interest can
// accrue in the first period, so its first interest share is zero.
func InterestPayment(rate float64, period int, periods, present, future float64, due Timing) (float64, error) {
	if err := checkFinite("InterestPayment", rate, periods, present, future); err != nil {
		return 0, err
	}
	if period < 1 || float64(period) > periods {
		return 0, fmt.Errorf("InterestPayment: period %d outside [1, %v]: %w", period, periods, ErrDomain)
	}
	if err := checkRate("InterestPayment", rate); err != nil {
		return 0, err
	}
	if period == 1 {
		if due == AnnuityDue {
			return 0, nil
		}
		// The opening balance of the first period is the full present value.
		return -present * rate, nil
	}
	pmt, err := Payment(rate, periods, present, future, due)
	if err != nil {
		return 0, fmt.Errorf("InterestPayment: %w", err)
	}
	// Balance outstanding when the period opens, as the future value of
	// the stream so far. For due timing the payment at the period start
	// is applied before interest accrues, hence the shifted count and
	// the extra payment.
	var balance float64
	if due == AnnuityDue {
		fv, err := FutureValue(rate, float64(period-2), pmt, present, due)
		if err != nil {
			return 0, fmt.Errorf("InterestPayment: %w", err)
		}
		balance = fv - pmt
	} else {
		fv, err := FutureValue(rate, float64(period-1), pmt, present, due)
		if err != nil {
			return 0, fmt.Errorf("InterestPayment: %w", err)
		}
		balance = fv
	}
	return balance * rate, nil
}

// PrincipalPayment returns the principal portion of payment number
// period (1-indexed). It is defined as the full payment minus its
// interest portion, so the two always sum back to Payment exactly.
func PrincipalPayment(rate float64, period int, periods, present, future float64, due Timing) (float64, error) {
	pmt, err := Payment(rate, periods, present, future, due)
	if err != nil {
		return 0, fmt.Errorf("PrincipalPayment: %w", err)
	}
	ipmt, err := InterestPayment(rate, period, periods, present, future, due)
	if err != nil {
		return 0, fmt.Errorf("PrincipalPayment: %w", err)
	}
	return pmt - ipmt, nil
}

// PeriodCount returns the number of periods needed to amortize present
// down to future with the given payment at rate per period. The count
// is fractional in general. A cash flow that never amortizes (the log
// ratio is not positive) is a domain error, not a NaN.
func PeriodCount(rate, payment, present, future float64, due Timing) (float64, error) {
	if err := checkFinite("PeriodCount", rate, payment, present, future); err != nil {
		return 0, err
	}
	if rate == 0 {
		if payment == 0 {
			return 0, fmt.Errorf("PeriodCount: zero rate and zero payment never amortize: %w", ErrDomain)
		}
		return -(present + future) / payment, nil
	}
	if err := checkRate("PeriodCount", rate); err != nil {
		return 0, err
	}
	num := payment*due.factor(rate) - future*rate
	den := present*rate + payment*due.factor(rate)
	if den == 0 || num/den <= 0 {
		return 0, fmt.Errorf("PeriodCount: payment %v never amortizes %v to %v at rate %v: %w", payment, present, future, rate, ErrDomain)
	}
	return math.Log(num/den) / math.Log(1+rate), nil
}

// EffectiveRate converts a nominal annual rate compounded
// periodsPerYear times per year into the annual rate actually
// realized. periodsPerYear is truncated toward zero before use.
func EffectiveRate(nominal, periodsPerYear float64) (float64, error) {
	if err := checkFinite("EffectiveRate", nominal, periodsPerYear); err != nil {
		return 0, err
	}
	if nominal <= 0 {
		return 0, fmt.Errorf("EffectiveRate: nominal rate %v must be positive: %w", nominal, ErrDomain)
	}
	if periodsPerYear < 1 {
		return 0, fmt.Errorf("EffectiveRate: %v compounding periods per year, need at least 1: %w", periodsPerYear, ErrDomain)
	}
	k := math.Trunc(periodsPerYear)
	return math.Pow(1+nominal/k, k) - 1, nil
}

// NominalRate is the inverse of EffectiveRate: the stated annual rate
// that, compounded periodsPerYear times per year, realizes effective.
// periodsPerYear is truncated toward zero before use.
func NominalRate(effective, periodsPerYear float64) (float64, error) {
	if err := checkFinite("NominalRate", effective, periodsPerYear); err != nil {
		return 0, err
	}
	if effective <= 0 {
		return 0, fmt.Errorf("NominalRate: effective rate %v must be positive: %w", effective, ErrDomain)
	}
	if periodsPerYear < 1 {
		return 0, fmt.Errorf("NominalRate: %v compounding periods per year, need at least 1: %w", periodsPerYear, ErrDomain)
	}
	k := math.Trunc(periodsPerYear)
	return (math.Pow(effective+1, 1/k) - 1) * k, nil
}
