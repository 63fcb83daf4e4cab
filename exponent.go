package commute

import (
	"fmt"
	"math"
)

// Exponent is a signed integer exponent kept as an explicit case split:
//
//	NonNegative(n)  means  n
//	Negative(n)     means  -(n+1)
//
// Every consumer handles both cases through Match, so there is no signed
// arithmetic (and no overflow at math.MinInt) in the power engine.
type Exponent struct {
	neg bool
	n   uint
}

// NonNegative returns the exponent n.
func NonNegative(n uint) Exponent { return Exponent{n: n} }

// Negative returns the exponent -(n+1).
func Negative(n uint) Exponent { return Exponent{neg: true, n: n} }

// IntExponent converts a machine integer.
func IntExponent(k int) Exponent {
	if k >= 0 {
		return NonNegative(uint(k))
	}
	// -(k+1) is non-negative and fits even for math.MinInt.
	return Negative(uint(-(k + 1)))
}

// Match dispatches on the sign case. onNeg receives n for the exponent -(n+1).
func Match[R any](e Exponent, onNonNeg func(n uint) R, onNeg func(n uint) R) R {
	if e.neg {
		return onNeg(e.n)
	}
	return onNonNeg(e.n)
}

// MatchErr is Match for handlers that can fail.
func MatchErr[R any](e Exponent, onNonNeg func(n uint) (R, error), onNeg func(n uint) (R, error)) (R, error) {
	if e.neg {
		return onNeg(e.n)
	}
	return onNonNeg(e.n)
}

// IsNegative reports whether e < 0.
func (e Exponent) IsNegative() bool { return e.neg }

// Int returns e as an int and whether it fits.
func (e Exponent) Int() (int, bool) {
	if e.n > math.MaxInt {
		return 0, false
	}
	if e.neg {
		return -int(e.n) - 1, true
	}
	return int(e.n), true
}

func (e Exponent) String() string {
	if k, ok := e.Int(); ok {
		return fmt.Sprintf("%d", k)
	}
	if e.neg {
		return fmt.Sprintf("-(%d+1)", e.n)
	}
	return fmt.Sprintf("%d", e.n)
}
