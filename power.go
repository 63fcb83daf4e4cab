package commute

import "fmt"

// Pow returns b^n. Pow(m, b, 0) is m.One() for every b.
func Pow[T any](m Monoid[T], b T, n uint) T {
	result := m.One()
	base := b
	for n > 0 {
		if n&1 == 1 {
			result = m.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = m.Mul(base, base)
		}
	}
	return result
}

// ZPow returns b^e for a signed exponent. b^-(n+1) is (b^n·b)⁻¹.
func ZPow[T any](g Group[T], b T, e Exponent) T {
	return Match(e,
		func(n uint) T { return Pow[T](g, b, n) },
		func(n uint) T { return g.Inv(g.Mul(Pow[T](g, b, n), b)) },
	)
}

// PowRight derives commutes(a, b^n) from h : commutes(a, b).
//
// Base case commutes(a, 1); every further factor is attached with MulRight,
// so the right element is computed exactly as Pow computes b^n.
func PowRight[T any](m Monoid[T], h Commute[T], n uint) (Commute[T], error) {
	if err := requireValid(h); err != nil {
		return Commute[T]{}, err
	}
	acc := OneRight(m, h.a)
	sq := h
	var err error
	for n > 0 {
		if n&1 == 1 {
			if acc, err = MulRight[T](m, acc, sq); err != nil {
				return Commute[T]{}, err
			}
		}
		n >>= 1
		if n > 0 {
			if sq, err = MulRight[T](m, sq, sq); err != nil {
				return Commute[T]{}, err
			}
		}
	}
	return acc.withRule("pow_right"), nil
}

// PowLeft derives commutes(a^n, b) from h : commutes(a, b).
func PowLeft[T any](m Monoid[T], h Commute[T], n uint) (Commute[T], error) {
	r, err := PowRight(m, h.Symm(), n)
	if err != nil {
		return Commute[T]{}, err
	}
	return r.Symm().withRule("pow_left"), nil
}

// PowPow derives commutes(a^n, b^k) from h : commutes(a, b).
func PowPow[T any](m Monoid[T], h Commute[T], n, k uint) (Commute[T], error) {
	right, err := PowRight(m, h, k)
	if err != nil {
		return Commute[T]{}, err
	}
	r, err := PowLeft(m, right, n)
	if err != nil {
		return Commute[T]{}, err
	}
	return r.withRule("pow_pow"), nil
}

// SelfPow returns commutes(a, a^n).
func SelfPow[T any](m Monoid[T], a T, n uint) Commute[T] {
	// Refl is always valid, so PowRight cannot fail here.
	h, _ := PowRight(m, Refl(a), n)
	return h.withRule("self_pow")
}

// PowSelfPow returns commutes(a^n, a^k).
func PowSelfPow[T any](m Monoid[T], a T, n, k uint) Commute[T] {
	h, _ := PowPow(m, Refl(a), n, k)
	return h.withRule("pow_self_pow")
}

// ZPowRight derives commutes(a, b^e) from h : commutes(a, b).
//
// The negative case builds commutes(a, b^(n+1)) and inverts its right
// argument with InvRight.
func ZPowRight[T any](g Group[T], h Commute[T], e Exponent) (Commute[T], error) {
	r, err := MatchErr(e,
		func(n uint) (Commute[T], error) { return PowRight[T](g, h, n) },
		func(n uint) (Commute[T], error) {
			hn, err := PowRight[T](g, h, n)
			if err != nil {
				return Commute[T]{}, err
			}
			succ, err := MulRight[T](g, hn, h)
			if err != nil {
				return Commute[T]{}, err
			}
			return InvRight(g, succ)
		},
	)
	if err != nil {
		return Commute[T]{}, fmt.Errorf("zpow_right %v: %w", e, err)
	}
	return r.withRule("zpow_right"), nil
}

// ZPowLeft derives commutes(a^e, b) from h : commutes(a, b).
func ZPowLeft[T any](g Group[T], h Commute[T], e Exponent) (Commute[T], error) {
	r, err := ZPowRight(g, h.Symm(), e)
	if err != nil {
		return Commute[T]{}, err
	}
	return r.Symm().withRule("zpow_left"), nil
}

// ZPowPow derives commutes(a^e, b^f) from h : commutes(a, b).
func ZPowPow[T any](g Group[T], h Commute[T], e, f Exponent) (Commute[T], error) {
	right, err := ZPowRight(g, h, f)
	if err != nil {
		return Commute[T]{}, err
	}
	r, err := ZPowLeft(g, right, e)
	if err != nil {
		return Commute[T]{}, err
	}
	return r.withRule("zpow_zpow"), nil
}

// Equaler is anything with an element equality; every Semigroup is one.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// Identity is an equational chain Steps[0] = Steps[1] = ... = Steps[len-1]
// produced by the law engine, together with the commutation fact that
// justifies reordering.
type Identity[T any] struct {
	Name    string
	Steps   []T
	Witness Commute[T]
}

// LHS returns the first term of the chain, or the zero T for an empty
// chain.
func (id Identity[T]) LHS() T {
	if len(id.Steps) == 0 {
		var zero T
		return zero
	}
	return id.Steps[0]
}

// RHS returns the last term of the chain, or the zero T for an empty chain.
func (id Identity[T]) RHS() T {
	if len(id.Steps) == 0 {
		var zero T
		return zero
	}
	return id.Steps[len(id.Steps)-1]
}

// Holds reports whether every consecutive pair of steps is equal. An empty
// chain, such as the zero Identity returned beside an error, never holds.
func (id Identity[T]) Holds(eq Equaler[T]) bool {
	if len(id.Steps) == 0 {
		return false
	}
	for i := 1; i < len(id.Steps); i++ {
		if !eq.Equal(id.Steps[i-1], id.Steps[i]) {
			return false
		}
	}
	return true
}

// FirstFailure returns the index i of the first step with Steps[i-1] ≠
// Steps[i], 0 for an empty chain, or -1 when the chain holds.
func (id Identity[T]) FirstFailure(eq Equaler[T]) int {
	if len(id.Steps) == 0 {
		return 0
	}
	for i := 1; i < len(id.Steps); i++ {
		if !eq.Equal(id.Steps[i-1], id.Steps[i]) {
			return i
		}
	}
	return -1
}

// MulPow builds (ab)^n = a^n·b^n from h : commutes(a, b).
//
// The inductive step (ab)^(n+1) = a·b·a^n·b^n = a·a^n·b·b^n relies on
// commutes(b, a^n), which is recorded as the Witness.
func MulPow[T any](m Monoid[T], h Commute[T], n uint) (Identity[T], error) {
	if err := requireValid(h); err != nil {
		return Identity[T]{}, err
	}
	a, b := h.a, h.b
	w, err := PowRight(m, h.Symm(), n)
	if err != nil {
		return Identity[T]{}, err
	}
	return Identity[T]{
		Name: fmt.Sprintf("mul_pow(%d)", n),
		Steps: []T{
			Pow(m, m.Mul(a, b), n),
			m.Mul(Pow(m, a, n), Pow(m, b, n)),
		},
		Witness: w,
	}, nil
}

// MulZPow extends MulPow to signed exponents in a group. For e = -(n+1):
//
//	(ab)^e = ((ab)^(n+1))⁻¹ = (a^(n+1)·b^(n+1))⁻¹ = b^e·a^e = a^e·b^e
//
// where the third step is the reversed product of inverses and the last
// uses commutes(a^e, b^e).
func MulZPow[T any](g Group[T], h Commute[T], e Exponent) (Identity[T], error) {
	if err := requireValid(h); err != nil {
		return Identity[T]{}, err
	}
	return MatchErr(e,
		func(n uint) (Identity[T], error) { return MulPow[T](g, h, n) },
		func(n uint) (Identity[T], error) {
			a, b := h.a, h.b
			w, err := ZPowPow(g, h, e, e)
			if err != nil {
				return Identity[T]{}, err
			}
			succA := g.Mul(Pow[T](g, a, n), a)
			succB := g.Mul(Pow[T](g, b, n), b)
			ae, be := ZPow(g, a, e), ZPow(g, b, e)
			return Identity[T]{
				Name: fmt.Sprintf("mul_zpow(%v)", e),
				Steps: []T{
					ZPow(g, g.Mul(a, b), e),
					g.Inv(g.Mul(succA, succB)),
					g.Mul(be, ae),
					g.Mul(ae, be),
				},
				Witness: w,
			}, nil
		},
	)
}

// NegPow builds (-a)^n = (-1)^n·a^n in a ring, by MulPow applied to
// (-1)·a with commutes(-1, a).
func NegPow[T any](r Ring[T], a T, n uint) (Identity[T], error) {
	h, err := NegLeft(r, OneLeft[T](r, a))
	if err != nil {
		return Identity[T]{}, err
	}
	inner, err := MulPow[T](r, h, n)
	if err != nil {
		return Identity[T]{}, err
	}
	return Identity[T]{
		Name:    fmt.Sprintf("neg_pow(%d)", n),
		Steps:   append([]T{Pow[T](r, r.Neg(a), n)}, inner.Steps...),
		Witness: h,
	}, nil
}
