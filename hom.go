package commute

import "fmt"

// MonoidHom is a map that preserves the identity and the multiplication.
//
// The package trusts the map the same way it trusts structure laws;
// CheckHom samples it when the caller wants evidence. The zero value has no
// map: CheckHom and the transport functions reject it with
// ErrNotHomomorphism, and Apply panics on it.
type MonoidHom[S, T any] struct {
	name  string
	apply func(S) T
}

// NewMonoidHom wraps fn as a homomorphism named name.
func NewMonoidHom[S, T any](name string, fn func(S) T) MonoidHom[S, T] {
	return MonoidHom[S, T]{name: name, apply: fn}
}

// IdentityHom returns the identity map on T.
func IdentityHom[T any]() MonoidHom[T, T] {
	return MonoidHom[T, T]{name: "id", apply: func(x T) T { return x }}
}

// Valid reports whether f carries a map.
func (f MonoidHom[S, T]) Valid() bool { return f.apply != nil }

func requireHom[S, T any](f MonoidHom[S, T]) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q has no map", ErrNotHomomorphism, f.name)
	}
	return nil
}

// Apply evaluates f at x.
func (f MonoidHom[S, T]) Apply(x S) T { return f.apply(x) }

// Name returns the map's name.
func (f MonoidHom[S, T]) Name() string { return f.name }

// Compose returns g∘f. Composition of homomorphisms is a homomorphism and
// is associative, so chains of any length can be folded pairwise in either
// order and transport through them behaves like transport through one map.
//
// Composing with an invalid map yields an invalid map.
func Compose[A, B, C any](f MonoidHom[A, B], g MonoidHom[B, C]) MonoidHom[A, C] {
	if !f.Valid() || !g.Valid() {
		return MonoidHom[A, C]{name: g.name + "∘" + f.name}
	}
	return MonoidHom[A, C]{
		name:  g.name + "∘" + f.name,
		apply: func(x A) C { return g.apply(f.apply(x)) },
	}
}

// CheckHom verifies on every sample (and every pair of samples) that f
// preserves the identity and the multiplication.
func CheckHom[S, T any](src Monoid[S], dst Monoid[T], f MonoidHom[S, T], samples []S) error {
	if err := requireHom(f); err != nil {
		return err
	}
	if !dst.Equal(f.Apply(src.One()), dst.One()) {
		return fmt.Errorf("%w: %s does not map one to one", ErrNotHomomorphism, f.name)
	}
	for _, x := range samples {
		for _, y := range samples {
			lhs := f.Apply(src.Mul(x, y))
			rhs := dst.Mul(f.Apply(x), f.Apply(y))
			if !dst.Equal(lhs, rhs) {
				return fmt.Errorf("%w: %s(%v·%v) = %v, want %v",
					ErrNotHomomorphism, f.name, x, y, lhs, rhs)
			}
		}
	}
	return nil
}

// TransportInvRight derives commutes(a, f(b⁻¹)) from h : commutes(a, f(b)).
//
// f(b⁻¹) is a two-sided inverse of f(b) in dst because f preserves the
// product and the identity, so the conjugation
//
//	a·f(b⁻¹) = f(b⁻¹)·f(b)·a·f(b⁻¹)
//	         = f(b⁻¹)·a·f(b)·f(b⁻¹)
//	         = f(b⁻¹)·a
//
// holds in any target monoid. Only the source needs inverses.
func TransportInvRight[S, T any](src Group[S], dst Monoid[T], f MonoidHom[S, T], b S, h Commute[T]) (Commute[T], error) {
	if err := requireHom(f); err != nil {
		return Commute[T]{}, err
	}
	if err := requireValid(h); err != nil {
		return Commute[T]{}, err
	}
	fb := f.Apply(b)
	if !dst.Equal(h.b, fb) {
		return Commute[T]{}, fmt.Errorf("%w: witness right element %v is not %s(%v) = %v",
			ErrPremiseMismatch, h.b, f.name, b, fb)
	}
	return witness(h.a, f.Apply(src.Inv(b)), "inv_right"), nil
}

// TransportInvLeft derives commutes(f(a⁻¹), b) from h : commutes(f(a), b).
func TransportInvLeft[S, T any](src Group[S], dst Monoid[T], f MonoidHom[S, T], a S, h Commute[T]) (Commute[T], error) {
	r, err := TransportInvRight(src, dst, f, a, h.Symm())
	if err != nil {
		return Commute[T]{}, err
	}
	return r.Symm().withRule("inv_left"), nil
}

// TransportInvInv derives commutes(f(a⁻¹), g(b⁻¹)) from
// h : commutes(f(a), g(b)) for two independent homomorphisms into dst.
func TransportInvInv[S1, S2, T any](
	srcF Group[S1], srcG Group[S2], dst Monoid[T],
	f MonoidHom[S1, T], g MonoidHom[S2, T],
	a S1, b S2, h Commute[T],
) (Commute[T], error) {
	right, err := TransportInvRight(srcG, dst, g, b, h)
	if err != nil {
		return Commute[T]{}, err
	}
	r, err := TransportInvLeft(srcF, dst, f, a, right)
	if err != nil {
		return Commute[T]{}, err
	}
	return r.withRule("inv_inv"), nil
}

// InvRight derives commutes(a, b⁻¹) from commutes(a, b). It is transport
// along the identity map.
func InvRight[T any](g Group[T], h Commute[T]) (Commute[T], error) {
	return TransportInvRight[T, T](g, g, IdentityHom[T](), h.b, h)
}

// InvLeft derives commutes(a⁻¹, b) from commutes(a, b).
func InvLeft[T any](g Group[T], h Commute[T]) (Commute[T], error) {
	return TransportInvLeft[T, T](g, g, IdentityHom[T](), h.a, h)
}

// InvInv derives commutes(a⁻¹, b⁻¹) from commutes(a, b).
func InvInv[T any](g Group[T], h Commute[T]) (Commute[T], error) {
	id := IdentityHom[T]()
	return TransportInvInv[T, T, T](g, g, g, id, id, h.a, h.b, h)
}
