package commute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Member is an element of a centralizer together with one witness per
// pivot: Witnesses()[i] is commutes(pivots[i], Value()).
//
// Members are only issued by the centralizer that owns them, either by a
// membership lookup or by one of its closure operations.
type Member[T any] struct {
	owner  *pivotSet[T]
	value  T
	proofs []Commute[T]
}

// Value returns the element.
func (x Member[T]) Value() T { return x.value }

// Witnesses returns a copy of the per-pivot witnesses.
func (x Member[T]) Witnesses() []Commute[T] {
	out := make([]Commute[T], len(x.proofs))
	copy(out, x.proofs)
	return out
}

func (x Member[T]) String() string {
	return fmt.Sprintf("Member(%v)", x.value)
}

// Cloner is implemented by element types with reference semantics, such as
// slices. Centralizers store clones of such pivots and looked-up values;
// other reference-typed elements must not be mutated after they are passed
// in.
type Cloner[T any] interface {
	Clone() T
}

func cloneElem[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}

func cloneAll[T any](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = cloneElem(x)
	}
	return out
}

// pivotSet is the membership predicate shared by every centralizer flavour.
// Its address identifies the issuing centralizer.
type pivotSet[T any] struct {
	s      Semigroup[T]
	pivots []T
	opts   Options
}

var errNotMember = errors.New("not a member")

func newPivotSet[T any](s Semigroup[T], opts Options, pivots []T) *pivotSet[T] {
	ps := &pivotSet[T]{
		s:      s,
		pivots: cloneAll(pivots),
		opts:   opts,
	}
	ps.opts.logger().Debug("centralizer built", "pivots", len(ps.pivots))
	return ps
}

// lookup checks every pivot. An empty pivot set admits everything.
func (ps *pivotSet[T]) lookup(x T) (Member[T], bool) {
	proofs := make([]Commute[T], len(ps.pivots))
	if !ps.opts.parallel(len(ps.pivots)) {
		for i, p := range ps.pivots {
			h, ok := Check(ps.s, p, x)
			if !ok {
				return Member[T]{}, false
			}
			proofs[i] = h
		}
		return Member[T]{owner: ps, value: x, proofs: proofs}, true
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(ps.opts.Parallelism)
	for i, p := range ps.pivots {
		i, p := i, p
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			h, ok := Check(ps.s, p, x)
			if !ok {
				return errNotMember
			}
			proofs[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Member[T]{}, false
	}
	return Member[T]{owner: ps, value: x, proofs: proofs}, true
}

func (ps *pivotSet[T]) contains(x T) bool {
	_, ok := ps.lookup(x)
	return ok
}

// enumerate filters universe, preserving order.
func (ps *pivotSet[T]) enumerate(universe []T) []T {
	start := time.Now()
	keep := make([]bool, len(universe))
	if ps.opts.parallel(len(universe)) {
		var g errgroup.Group
		g.SetLimit(ps.opts.Parallelism)
		for i, x := range universe {
			i, x := i, x
			g.Go(func() error {
				keep[i] = ps.contains(x)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, x := range universe {
			keep[i] = ps.contains(x)
		}
	}

	var out []T
	for i, ok := range keep {
		if ok {
			out = append(out, universe[i])
		}
	}
	ps.opts.logger().Debug("centralizer enumerated",
		"pivots", len(ps.pivots),
		"universe", len(universe),
		"members", len(out),
		"elapsed", time.Since(start))
	return out
}

func (ps *pivotSet[T]) owns(xs ...Member[T]) error {
	for _, x := range xs {
		if x.owner != ps {
			return ErrForeignMember
		}
	}
	return nil
}

// combine applies a binary witness rule pivot by pivot.
func (ps *pivotSet[T]) combine(value T, x, y Member[T], rule func(hx, hy Commute[T]) (Commute[T], error)) (Member[T], error) {
	if err := ps.owns(x, y); err != nil {
		return Member[T]{}, err
	}
	proofs := make([]Commute[T], len(ps.pivots))
	for i := range ps.pivots {
		h, err := rule(x.proofs[i], y.proofs[i])
		if err != nil {
			return Member[T]{}, fmt.Errorf("pivot %v: %w", ps.pivots[i], err)
		}
		proofs[i] = h
	}
	return Member[T]{owner: ps, value: value, proofs: proofs}, nil
}

// transform applies a unary witness rule pivot by pivot.
func (ps *pivotSet[T]) transform(value T, x Member[T], rule func(h Commute[T]) (Commute[T], error)) (Member[T], error) {
	if err := ps.owns(x); err != nil {
		return Member[T]{}, err
	}
	proofs := make([]Commute[T], len(ps.pivots))
	for i := range ps.pivots {
		h, err := rule(x.proofs[i])
		if err != nil {
			return Member[T]{}, fmt.Errorf("pivot %v: %w", ps.pivots[i], err)
		}
		proofs[i] = h
	}
	return Member[T]{owner: ps, value: value, proofs: proofs}, nil
}

// constant issues a member whose witnesses need no premise.
func (ps *pivotSet[T]) constant(value T, rule func(p T) Commute[T]) Member[T] {
	proofs := make([]Commute[T], len(ps.pivots))
	for i, p := range ps.pivots {
		proofs[i] = rule(p)
	}
	return Member[T]{owner: ps, value: value, proofs: proofs}
}

// Submonoid is the centralizer of a pivot set inside a monoid: every x with
// commutes(p, x) for all pivots p. It contains the identity and is closed
// under multiplication; both facts are derived from OneRight and MulRight.
type Submonoid[T any] struct {
	m   Monoid[T]
	set *pivotSet[T]
}

// NewSubmonoid builds the centralizer of pivots in m. Pivots implementing
// Cloner are cloned, so later changes to the caller's values do not change
// membership.
func NewSubmonoid[T any](m Monoid[T], opts Options, pivots ...T) *Submonoid[T] {
	return &Submonoid[T]{m: m, set: newPivotSet[T](m, opts, pivots)}
}

// Centralizer builds the centralizer of a single pivot with default options.
func Centralizer[T any](m Monoid[T], pivot T) *Submonoid[T] {
	return NewSubmonoid(m, DefaultOptions(), pivot)
}

// SetCentralizer builds the centralizer of a pivot set with default options.
// With no pivots it is the whole monoid.
func SetCentralizer[T any](m Monoid[T], pivots ...T) *Submonoid[T] {
	return NewSubmonoid(m, DefaultOptions(), pivots...)
}

// WithPivots returns a new centralizer over the same monoid. Members of c
// are not members of the result.
func (c *Submonoid[T]) WithPivots(pivots ...T) *Submonoid[T] {
	return NewSubmonoid(c.m, c.set.opts, pivots...)
}

// Pivots returns a copy of the pivot set.
func (c *Submonoid[T]) Pivots() []T { return cloneAll(c.set.pivots) }

// Contains reports whether x commutes with every pivot.
func (c *Submonoid[T]) Contains(x T) bool { return c.set.contains(x) }

// Lookup returns the member for x when x commutes with every pivot.
func (c *Submonoid[T]) Lookup(x T) (Member[T], bool) { return c.set.lookup(cloneElem(x)) }

// Enumerate returns the elements of universe that belong to c, in order.
func (c *Submonoid[T]) Enumerate(universe []T) []T { return c.set.enumerate(universe) }

// IsStrict reports whether some element of universe is not a member.
func (c *Submonoid[T]) IsStrict(universe []T) bool {
	return len(c.set.enumerate(universe)) < len(universe)
}

// One returns the identity as a member.
func (c *Submonoid[T]) One() Member[T] {
	return c.set.constant(c.m.One(), func(p T) Commute[T] { return OneRight(c.m, p) })
}

// Mul returns x·y as a member.
func (c *Submonoid[T]) Mul(x, y Member[T]) (Member[T], error) {
	return c.set.combine(c.m.Mul(x.value, y.value), x, y, func(hx, hy Commute[T]) (Commute[T], error) {
		return MulRight[T](c.m, hx, hy)
	})
}

// Pow returns x^n as a member.
func (c *Submonoid[T]) Pow(x Member[T], n uint) (Member[T], error) {
	return c.set.transform(Pow(c.m, x.value, n), x, func(h Commute[T]) (Commute[T], error) {
		return PowRight(c.m, h, n)
	})
}

// Subgroup is the centralizer of a pivot set inside a group. On top of the
// submonoid closure it is closed under inverses, derived from InvRight.
type Subgroup[T any] struct {
	*Submonoid[T]
	g Group[T]
}

// NewSubgroup builds the centralizer of pivots in g.
func NewSubgroup[T any](g Group[T], opts Options, pivots ...T) *Subgroup[T] {
	return &Subgroup[T]{Submonoid: NewSubmonoid[T](g, opts, pivots...), g: g}
}

// WithPivots returns a new centralizer over the same group.
func (c *Subgroup[T]) WithPivots(pivots ...T) *Subgroup[T] {
	return NewSubgroup(c.g, c.set.opts, pivots...)
}

// Inv returns x⁻¹ as a member.
func (c *Subgroup[T]) Inv(x Member[T]) (Member[T], error) {
	return c.set.transform(c.g.Inv(x.value), x, func(h Commute[T]) (Commute[T], error) {
		return InvRight(c.g, h)
	})
}

// ZPow returns x^e as a member.
func (c *Subgroup[T]) ZPow(x Member[T], e Exponent) (Member[T], error) {
	return c.set.transform(ZPow(c.g, x.value, e), x, func(h Commute[T]) (Commute[T], error) {
		return ZPowRight(c.g, h, e)
	})
}

// Subsemiring is the centralizer of a pivot set inside a semiring. It adds
// zero and closure under addition, derived from ZeroRight and AddRight.
type Subsemiring[T any] struct {
	*Submonoid[T]
	r Semiring[T]
}

// NewSubsemiring builds the centralizer of pivots in r.
func NewSubsemiring[T any](r Semiring[T], opts Options, pivots ...T) *Subsemiring[T] {
	return &Subsemiring[T]{Submonoid: NewSubmonoid[T](r, opts, pivots...), r: r}
}

// WithPivots returns a new centralizer over the same semiring.
func (c *Subsemiring[T]) WithPivots(pivots ...T) *Subsemiring[T] {
	return NewSubsemiring(c.r, c.set.opts, pivots...)
}

// Zero returns zero as a member.
func (c *Subsemiring[T]) Zero() Member[T] {
	return c.set.constant(c.r.Zero(), func(p T) Commute[T] { return ZeroRight(c.r, p) })
}

// Add returns x+y as a member.
func (c *Subsemiring[T]) Add(x, y Member[T]) (Member[T], error) {
	return c.set.combine(c.r.Add(x.value, y.value), x, y, func(hx, hy Commute[T]) (Commute[T], error) {
		return AddRight(c.r, hx, hy)
	})
}

// Subring is the centralizer of a pivot set inside a ring. It adds closure
// under negation and subtraction, derived from NegRight and SubRight.
type Subring[T any] struct {
	*Subsemiring[T]
	ring Ring[T]
}

// NewSubring builds the centralizer of pivots in r.
func NewSubring[T any](r Ring[T], opts Options, pivots ...T) *Subring[T] {
	return &Subring[T]{Subsemiring: NewSubsemiring[T](r, opts, pivots...), ring: r}
}

// WithPivots returns a new centralizer over the same ring.
func (c *Subring[T]) WithPivots(pivots ...T) *Subring[T] {
	return NewSubring(c.ring, c.set.opts, pivots...)
}

// Neg returns -x as a member.
func (c *Subring[T]) Neg(x Member[T]) (Member[T], error) {
	return c.set.transform(c.ring.Neg(x.value), x, func(h Commute[T]) (Commute[T], error) {
		return NegRight(c.ring, h)
	})
}

// Sub returns x-y as a member.
func (c *Subring[T]) Sub(x, y Member[T]) (Member[T], error) {
	return c.set.combine(Sub(c.ring, x.value, y.value), x, y, func(hx, hy Commute[T]) (Commute[T], error) {
		return SubRight(c.ring, hx, hy)
	})
}
