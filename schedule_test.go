package fincalc

import (
	"errors"
	"math"
	"testing"
)

func TestAmortize(t *testing.T) {
	s, err := Amortize(0.005, 12, 1000, 0, OrdinaryAnnuity, "USD")
	if err != nil {
		t.Fatalf("Amortize() returned unexpected error: %v", err)
	}
	if len(s.Rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(s.Rows))
	}
	if got, want := s.Payment.String(), "-$86.07"; got != want {
		t.Errorf("payment = %q, want %q", got, want)
	}

	prev := math.Inf(-1)
	for _, row := range s.Rows {
		// Interest and principal are rounded independently, so they may
		// miss the payment by at most one cent.
		split := row.Interest.AsFloat() + row.Principal.AsFloat()
		if math.Abs(split-row.Payment.AsFloat()) > 0.011 {
			t.Errorf("row %d: interest %v + principal %v far from payment %v", row.Period, row.Interest, row.Principal, row.Payment)
		}
		// The balance shares the payment's sign convention: negative
		// while money is owed, climbing toward zero with every payment.
		if b := row.Balance.AsFloat(); b > 0 || b < prev {
			t.Errorf("row %d: balance %v not rising from %v toward zero", row.Period, b, prev)
		} else {
			prev = b
		}
	}

	last := s.Rows[len(s.Rows)-1]
	if !last.Balance.IsZero() {
		t.Errorf("final balance = %v, want zero", last.Balance)
	}
	// Interest and principal totals reconstruct the full cost.
	if got := s.TotalPrincipal.AsFloat(); math.Abs(got+1000) > 0.01 {
		t.Errorf("total principal = %v, want -1000", got)
	}
	if !s.TotalInterest.IsNegative() {
		t.Errorf("total interest = %v, want negative (interest is paid out)", s.TotalInterest)
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	s, err := Amortize(0, 10, 1000, 0, OrdinaryAnnuity, "EUR")
	if err != nil {
		t.Fatalf("Amortize() returned unexpected error: %v", err)
	}
	for _, row := range s.Rows {
		if !row.Interest.IsZero() {
			t.Errorf("row %d: interest = %v, want zero at zero rate", row.Period, row.Interest)
		}
		if got := row.Principal.AsFloat(); got != -100 {
			t.Errorf("row %d: principal = %v, want -100", row.Period, got)
		}
	}
	if !s.TotalInterest.IsZero() {
		t.Errorf("total interest = %v, want zero", s.TotalInterest)
	}
	if !s.Rows[9].Balance.IsZero() {
		t.Errorf("final balance = %v, want zero", s.Rows[9].Balance)
	}
}

func TestAmortizeDue(t *testing.T) {
	s, err := Amortize(0.005, 12, 1000, 0, AnnuityDue, "USD")
	if err != nil {
		t.Fatalf("Amortize() returned unexpected error: %v", err)
	}
	if !s.Rows[0].Interest.IsZero() {
		t.Errorf("first due-annuity interest = %v, want zero", s.Rows[0].Interest)
	}
	if !s.Rows[len(s.Rows)-1].Balance.IsZero() {
		t.Errorf("final balance = %v, want zero", s.Rows[len(s.Rows)-1].Balance)
	}
}

func TestAmortizeToResidualFuture(t *testing.T) {
	// A balloon loan: amortize 20000 down to a 5000 residual.
	s, err := Amortize(0.004, 48, 20000, -5000, OrdinaryAnnuity, "USD")
	if err != nil {
		t.Fatalf("Amortize() returned unexpected error: %v", err)
	}
	last := s.Rows[len(s.Rows)-1]
	if got := last.Balance.AsFloat(); math.Abs(got+5000) > 0.01 {
		t.Errorf("final balance = %v, want -5000", got)
	}
}

func TestAmortizeRejectsBadInput(t *testing.T) {
	if _, err := Amortize(0.005, 0, 1000, 0, OrdinaryAnnuity, "USD"); !errors.Is(err, ErrDomain) {
		t.Errorf("zero periods: got %v, want ErrDomain", err)
	}
	if _, err := Amortize(math.NaN(), 12, 1000, 0, OrdinaryAnnuity, "USD"); !errors.Is(err, ErrDomain) {
		t.Errorf("NaN rate: got %v, want ErrDomain", err)
	}
}
