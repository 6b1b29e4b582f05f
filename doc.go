// Package fincalc provides spreadsheet-compatible time-value-of-money
// formulas: present value, future value, loan payment and its
// interest/principal split, period count, an implied-rate solver, and
// nominal/effective annual rate conversions.
//
// All functions are pure and stateless: they operate on scalar inputs,
// share a single sign convention (cash paid out is negative, cash
// received is positive), and may be called concurrently without
// coordination.
//
// Invalid inputs never surface as NaN or infinity. Every function
// validates its arguments and returns an error wrapping ErrDomain, and
// the rate solver returns an error wrapping ErrNoConvergence when its
// iteration budget runs out. Callers discriminate with errors.Is.
//
// This package serves as the foundational logic for the `fin`
// command-line tool, which exposes each formula as a subcommand and
// renders amortization schedules as markdown.
package fincalc
