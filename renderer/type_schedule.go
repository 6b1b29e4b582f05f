package renderer

import "github.com/etnz/fincalc"

// Schedule is the view model for an amortization table. Amounts are
// kept as fincalc value types so the template can rely on their
// renderers (String, SignedString).
type Schedule struct {
	// Rate is the per-period rate.
	Rate fincalc.Percent
	// Periods is the length of the schedule.
	Periods int
	// Due describes the payment timing ("end" or "begin").
	Due string
	// Present and Future are the amounts the schedule amortizes between.
	Present fincalc.Money
	Future  fincalc.Money
	// Payment is the constant periodic payment.
	Payment fincalc.Money
	// Rows is the period-by-period breakdown.
	Rows []ScheduleRow

	TotalInterest  fincalc.Money
	TotalPrincipal fincalc.Money
}

// ScheduleRow is one line of the table.
type ScheduleRow struct {
	Period    int
	Payment   fincalc.Money
	Interest  fincalc.Money
	Principal fincalc.Money
	Balance   fincalc.Money
}

// NewSchedule creates the view model from a computed schedule.
func NewSchedule(s *fincalc.Schedule) *Schedule {
	v := &Schedule{
		Rate:           fincalc.PercentOf(s.Rate),
		Periods:        s.Periods,
		Due:            s.Due.String(),
		Present:        s.Present,
		Future:         s.Future,
		Payment:        s.Payment,
		TotalInterest:  s.TotalInterest,
		TotalPrincipal: s.TotalPrincipal,
	}
	for _, row := range s.Rows {
		v.Rows = append(v.Rows, ScheduleRow{
			Period:    row.Period,
			Payment:   row.Payment,
			Interest:  row.Interest,
			Principal: row.Principal,
			Balance:   row.Balance,
		})
	}
	return v
}
