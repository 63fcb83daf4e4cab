package commute

// Semigroup is a carrier with an associative multiplication.
//
// Equal is the structure's notion of element equality. Implementations are
// trusted to satisfy their declared laws; nothing in this package re-checks
// them on the hot path (see LawChecker for sampling-based verification).
type Semigroup[T any] interface {
	Mul(a, b T) T
	Equal(a, b T) bool
}

// Monoid adds a two-sided identity to a Semigroup.
type Monoid[T any] interface {
	Semigroup[T]
	One() T
}

// Group adds inverses to a Monoid.
//
// Negative exponents and inverse closure are only available for groups:
// functions that need them take a Group[T], so requesting them on a plain
// monoid is a compile error rather than a runtime failure.
type Group[T any] interface {
	Monoid[T]
	Inv(a T) T
}

// Semiring is a multiplicative Monoid with a commutative additive monoid
// (Add, Zero) over which multiplication distributes.
type Semiring[T any] interface {
	Monoid[T]
	Add(a, b T) T
	Zero() T
}

// Ring adds additive inverses to a Semiring.
type Ring[T any] interface {
	Semiring[T]
	Neg(a T) T
}

// Sub returns a + (-b).
func Sub[T any](r Ring[T], a, b T) T {
	return r.Add(a, r.Neg(b))
}

// Commutes reports whether a∘b = b∘a under the semigroup's multiplication.
func Commutes[T any](s Semigroup[T], a, b T) bool {
	return s.Equal(s.Mul(a, b), s.Mul(b, a))
}

// NegOne returns -1 in r.
func NegOne[T any](r Ring[T]) T {
	return r.Neg(r.One())
}
