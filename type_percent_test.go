package fincalc

import "testing"

func TestPercent(t *testing.T) {
	if got, want := PercentOf(0.05).String(), "5.0000%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := PercentOf(-0.013).SignedString(), "-1.3000%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got := PercentOf(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
}

func TestPercentEqual(t *testing.T) {
	// Equality follows the four-decimal display: values that render the
	// same compare equal, values a display step apart do not.
	if !Percent(5).Equal(Percent(5.00004)) {
		t.Error("percents rendering identically should be equal")
	}
	if Percent(5).Equal(Percent(5.0001)) {
		t.Error("percents a display step apart should not be equal")
	}
}
