package fincalc

import "errors"

// ErrDomain reports an input outside a function's mathematical domain:
// a non-finite argument, a zero divisor, or the logarithm of a
// non-positive ratio. Domain failures are ordinary outcomes of
// ill-posed queries and are meant to be recovered by the caller.
var ErrDomain = errors.New("domain error")

// ErrNoConvergence reports that Rate exhausted its iteration budget
// before the residual delta met tolerance.
var ErrNoConvergence = errors.New("no convergence")
