package commute

import "fmt"

// Commute is a witness that Left()∘Right() = Right()∘Left().
//
// A Commute can only be obtained from Check, from the trivially true
// constructors (Refl, OneRight, ZeroRight, ...) or by combining existing
// witnesses with the rules in this package. Holding a valid Commute is
// therefore evidence that the relation holds, given a structure that
// satisfies its laws. The zero value is not a witness.
type Commute[T any] struct {
	a, b  T
	rule  string
	valid bool
}

func witness[T any](a, b T, rule string) Commute[T] {
	return Commute[T]{a: a, b: b, rule: rule, valid: true}
}

// Check evaluates the relation and returns a witness when it holds.
func Check[T any](s Semigroup[T], a, b T) (Commute[T], bool) {
	if !Commutes(s, a, b) {
		return Commute[T]{}, false
	}
	return witness(a, b, "check"), true
}

// Refl returns the witness that every element commutes with itself.
func Refl[T any](a T) Commute[T] {
	return witness(a, a, "refl")
}

// OneRight returns the witness that a commutes with the identity.
func OneRight[T any](m Monoid[T], a T) Commute[T] {
	return witness(a, m.One(), "one_right")
}

// OneLeft returns the witness that the identity commutes with a.
func OneLeft[T any](m Monoid[T], a T) Commute[T] {
	return OneRight(m, a).Symm().withRule("one_left")
}

// ZeroRight returns the witness that a commutes with zero.
func ZeroRight[T any](r Semiring[T], a T) Commute[T] {
	return witness(a, r.Zero(), "zero_right")
}

// ZeroLeft returns the witness that zero commutes with a.
func ZeroLeft[T any](r Semiring[T], a T) Commute[T] {
	return ZeroRight(r, a).Symm().withRule("zero_left")
}

// Left returns the first element of the pair.
func (h Commute[T]) Left() T { return h.a }

// Right returns the second element of the pair.
func (h Commute[T]) Right() T { return h.b }

// Rule names the derivation step that produced the witness.
func (h Commute[T]) Rule() string { return h.rule }

// Valid reports whether h was produced by this package.
func (h Commute[T]) Valid() bool { return h.valid }

// Verify re-evaluates the equation in s. A valid witness over a lawful
// structure always verifies.
func (h Commute[T]) Verify(s Semigroup[T]) bool {
	return h.valid && Commutes(s, h.a, h.b)
}

// Symm swaps the pair.
func (h Commute[T]) Symm() Commute[T] {
	if !h.valid {
		return h
	}
	return witness(h.b, h.a, "symm")
}

func (h Commute[T]) withRule(rule string) Commute[T] {
	h.rule = rule
	return h
}

func (h Commute[T]) String() string {
	if !h.valid {
		return "Commute(<invalid>)"
	}
	return fmt.Sprintf("Commute(%v, %v) [%s]", h.a, h.b, h.rule)
}

func requireValid[T any](hs ...Commute[T]) error {
	for _, h := range hs {
		if !h.valid {
			return fmt.Errorf("%w: zero witness", ErrPremiseMismatch)
		}
	}
	return nil
}

// MulRight combines commutes(a, b) and commutes(a, c) into commutes(a, b∘c).
//
//	a(bc) = (ab)c = (ba)c = b(ac) = b(ca) = (bc)a
func MulRight[T any](s Semigroup[T], hab, hac Commute[T]) (Commute[T], error) {
	if err := requireValid(hab, hac); err != nil {
		return Commute[T]{}, err
	}
	if !s.Equal(hab.a, hac.a) {
		return Commute[T]{}, fmt.Errorf("%w: mul_right needs a common left element, got %v and %v",
			ErrPremiseMismatch, hab.a, hac.a)
	}
	return witness(hab.a, s.Mul(hab.b, hac.b), "mul_right"), nil
}

// MulLeft combines commutes(a, c) and commutes(b, c) into commutes(a∘b, c).
func MulLeft[T any](s Semigroup[T], hac, hbc Commute[T]) (Commute[T], error) {
	h, err := MulRight(s, hac.Symm(), hbc.Symm())
	if err != nil {
		return Commute[T]{}, fmt.Errorf("mul_left: %w", err)
	}
	return h.Symm().withRule("mul_left"), nil
}

// AddRight combines commutes(a, b) and commutes(a, c) into commutes(a, b+c).
//
//	a(b+c) = ab + ac = ba + ca = (b+c)a
func AddRight[T any](r Semiring[T], hab, hac Commute[T]) (Commute[T], error) {
	if err := requireValid(hab, hac); err != nil {
		return Commute[T]{}, err
	}
	if !r.Equal(hab.a, hac.a) {
		return Commute[T]{}, fmt.Errorf("%w: add_right needs a common left element, got %v and %v",
			ErrPremiseMismatch, hab.a, hac.a)
	}
	return witness(hab.a, r.Add(hab.b, hac.b), "add_right"), nil
}

// AddLeft combines commutes(a, c) and commutes(b, c) into commutes(a+b, c).
func AddLeft[T any](r Semiring[T], hac, hbc Commute[T]) (Commute[T], error) {
	h, err := AddRight(r, hac.Symm(), hbc.Symm())
	if err != nil {
		return Commute[T]{}, fmt.Errorf("add_left: %w", err)
	}
	return h.Symm().withRule("add_left"), nil
}

// NegRight turns commutes(a, b) into commutes(a, -b).
//
//	a(-b) = -(ab) = -(ba) = (-b)a
func NegRight[T any](r Ring[T], hab Commute[T]) (Commute[T], error) {
	if err := requireValid(hab); err != nil {
		return Commute[T]{}, err
	}
	return witness(hab.a, r.Neg(hab.b), "neg_right"), nil
}

// NegLeft turns commutes(a, b) into commutes(-a, b).
func NegLeft[T any](r Ring[T], hab Commute[T]) (Commute[T], error) {
	h, err := NegRight(r, hab.Symm())
	if err != nil {
		return Commute[T]{}, err
	}
	return h.Symm().withRule("neg_left"), nil
}

// SubRight combines commutes(a, b) and commutes(a, c) into commutes(a, b-c).
func SubRight[T any](r Ring[T], hab, hac Commute[T]) (Commute[T], error) {
	hneg, err := NegRight(r, hac)
	if err != nil {
		return Commute[T]{}, err
	}
	h, err := AddRight[T](r, hab, hneg)
	if err != nil {
		return Commute[T]{}, fmt.Errorf("sub_right: %w", err)
	}
	return h.withRule("sub_right"), nil
}

// SubLeft combines commutes(a, c) and commutes(b, c) into commutes(a-b, c).
func SubLeft[T any](r Ring[T], hac, hbc Commute[T]) (Commute[T], error) {
	h, err := SubRight(r, hac.Symm(), hbc.Symm())
	if err != nil {
		return Commute[T]{}, fmt.Errorf("sub_left: %w", err)
	}
	return h.Symm().withRule("sub_left"), nil
}
