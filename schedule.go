package fincalc

import (
	"fmt"
	"math"
)

// ScheduleRow is one period of an amortization schedule. Payment,
// Interest and Principal follow the cash-flow sign convention (a loan
// being repaid shows negative payments), and so does Balance: the
// obligation left when the period closes, negative while money is
// still owed, ending on the schedule's future value.
type ScheduleRow struct {
	Period    int
	Payment   Money
	Interest  Money
	Principal Money
	Balance   Money
}

// Schedule is a complete amortization table for a constant-payment
// loan or investment plan.
type Schedule struct {
	Rate    float64 // per-period rate
	Periods int
	Due     Timing
	Present Money
	Future  Money
	Payment Money // the constant periodic payment
	Rows    []ScheduleRow

	TotalInterest  Money
	TotalPrincipal Money
}

// Amortize builds the period-by-period schedule that pays present down
// to future over an integer number of periods, formatting every amount
// in the given currency. Each row splits the payment with
// InterestPayment and PrincipalPayment, so interest plus principal
// equals the payment on every line.
func Amortize(rate float64, periods int, present, future float64, due Timing, currency string) (*Schedule, error) {
	if periods < 1 {
		return nil, fmt.Errorf("Amortize: need at least one period, got %d: %w", periods, ErrDomain)
	}
	n := float64(periods)
	pmt, err := Payment(rate, n, present, future, due)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		Rate:    rate,
		Periods: periods,
		Due:     due,
		Present: M(present, currency),
		Future:  M(future, currency),
		Payment: M(pmt, currency),
		Rows:    make([]ScheduleRow, 0, periods),
	}

	var totalInterest, totalPrincipal float64
	for k := 1; k <= periods; k++ {
		ipmt, err := InterestPayment(rate, k, n, present, future, due)
		if err != nil {
			return nil, err
		}
		ppmt := pmt - ipmt
		totalInterest += ipmt
		totalPrincipal += ppmt
		// Each principal share settles part of the obligation, so the
		// closing balance is what the principal paid so far has not yet
		// covered, negated into the cash-flow convention.
		balance := -(present + totalPrincipal)

		row := ScheduleRow{
			Period:    k,
			Payment:   M(pmt, currency),
			Interest:  M(ipmt, currency),
			Principal: M(ppmt, currency),
			Balance:   M(balance, currency),
		}
		// The closed forms leave a sub-cent residue on the last row.
		if k == periods && math.Abs(balance-future) < 0.005 {
			row.Balance = M(future, currency)
		}
		s.Rows = append(s.Rows, row)
	}
	s.TotalInterest = M(totalInterest, currency)
	s.TotalPrincipal = M(totalPrincipal, currency)
	return s, nil
}
