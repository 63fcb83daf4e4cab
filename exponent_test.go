package commute

import (
	"math"
	"testing"
)

func TestIntExponent_CaseSplit(t *testing.T) {
	cases := []struct {
		k       int
		neg     bool
		payload uint
	}{
		{0, false, 0},
		{5, false, 5},
		{-1, true, 0},
		{-4, true, 3},
		{math.MinInt, true, uint(math.MaxInt)},
	}

	for _, tc := range cases {
		e := IntExponent(tc.k)
		if e.IsNegative() != tc.neg {
			t.Errorf("IntExponent(%d).IsNegative() = %v", tc.k, e.IsNegative())
		}
		got := Match(e,
			func(n uint) uint { return n },
			func(n uint) uint { return n },
		)
		if got != tc.payload {
			t.Errorf("IntExponent(%d) payload = %d, want %d", tc.k, got, tc.payload)
		}
		if back, ok := e.Int(); !ok || back != tc.k {
			t.Errorf("IntExponent(%d).Int() = %d, %v", tc.k, back, ok)
		}
	}
}

func TestExponent_String(t *testing.T) {
	if s := Negative(0).String(); s != "-1" {
		t.Errorf("Negative(0) = %q, want -1", s)
	}
	if s := NonNegative(7).String(); s != "7" {
		t.Errorf("NonNegative(7) = %q", s)
	}
	if s := Negative(math.MaxUint).String(); s != "-(18446744073709551615+1)" {
		t.Errorf("Negative(MaxUint) = %q", s)
	}
	if _, ok := NonNegative(math.MaxUint).Int(); ok {
		t.Error("MaxUint should not fit in int")
	}
}
