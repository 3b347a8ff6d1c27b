package model

import (
	"math"
	"testing"
)

func TestToInches(t *testing.T) {
	cases := []struct {
		ft, in, want float64
	}{
		{0, 0, 0},
		{1, 0, 12},
		{9, 6, 114},
		{20, 0, 240},
		{0, 7.5, 7.5},
		{-1, 6, -6}, // negative inputs propagate
	}
	for _, c := range cases {
		if got := ToInches(c.ft, c.in); got != c.want {
			t.Errorf("ToInches(%g, %g) = %g, want %g", c.ft, c.in, got, c.want)
		}
	}
}

func TestRoundUpToIncrement(t *testing.T) {
	cases := []struct {
		in, inc, want float64
	}{
		{114, 0.125, 114},
		{114.01, 0.125, 114.125},
		{114.126, 0.125, 114.25},
		{0, 0.125, 0},
		{10.1, 0.5, 10.5},
	}
	for _, c := range cases {
		if got := RoundUpToIncrement(c.in, c.inc); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("RoundUpToIncrement(%g, %g) = %g, want %g", c.in, c.inc, got, c.want)
		}
	}
}

func TestRoundUpToIncrementMonotonic(t *testing.T) {
	// Rounding never shrinks a length and always lands on a multiple of the
	// increment.
	inc := 0.125
	for x := 0.0; x < 50; x += 0.37 {
		rounded := RoundUpToIncrement(x, inc)
		if rounded < x {
			t.Fatalf("RoundUpToIncrement(%g) = %g shrank the value", x, rounded)
		}
		rem := math.Mod(rounded, inc)
		if rem > 1e-9 && inc-rem > 1e-9 {
			t.Fatalf("RoundUpToIncrement(%g) = %g is not a multiple of %g", x, rounded, inc)
		}
	}
}
