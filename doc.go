// Package commute provides a generic library for reasoning about when two
// elements of an algebraic structure commute, and for deriving new
// commutation facts from old ones.
//
// # Overview
//
// Two elements a and b commute when a·b = b·a. The package checks that
// relation once, wraps the result in a Commute witness, and then builds new
// witnesses with combinators that only ever accept witnesses as premises:
//
//	h, ok := commute.Check(d4, d4.Rotation(1), d4.Rotation(3))
//	if !ok {
//	    return
//	}
//	h5, err := commute.PowRight(d4, h, 5) // commutes(r1, r3^5)
//
// A witness cannot be forged: its fields are unexported and the zero value
// is invalid. Combinators return ErrPremiseMismatch when their premises are
// about different elements.
//
// # Architecture
//
// The package components:
//
//   - structure.go   - Semigroup, Monoid, Group, Semiring and Ring traits
//   - commute.go     - Commute witness, Check, Symm, MulRight, AddRight, ...
//   - exponent.go    - integer exponents as NonNegative(n) | Negative(n)
//   - power.go       - Pow, ZPow, power laws and the product law
//   - hom.go         - monoid homomorphisms and inverse transport
//   - centralizer.go - centralizers as sub-structure handles
//   - runtime.go     - runtime law verification
//   - assertions.go  - test helpers for commutation properties
//
// Each function asks for the weakest trait it needs, so calling ZPowRight
// on a plain Monoid is a compile error rather than a runtime failure.
//
// # Structures
//
// Implement the traits for your own type:
//
//	type Quat struct{ ... }
//
//	func (QuatGroup) Mul(x, y Quat) Quat { ... }
//	func (QuatGroup) Equal(x, y Quat) bool { ... }
//	func (QuatGroup) One() Quat { ... }
//	func (QuatGroup) Inv(x Quat) Quat { ... }
//
// The structures subpackage ships integers, Z/n, dihedral and symmetric
// groups and 2×2 matrices.
//
// # Power Laws
//
// From commutes(a, b):
//
//	commutes(a, b^n)         PowRight
//	commutes(a^n, b^k)       PowPow
//	commutes(a, b^e)         ZPowRight, e = NonNegative(n) or Negative(n) = -(n+1)
//	(ab)^n = a^n·b^n         MulPow, MulZPow
//	(-a)^n = (-1)^n·a^n      NegPow (rings, no premise)
//
// The laws return an Identity, an equational chain whose Holds method
// rechecks every step.
//
// # Centralizers
//
// The centralizer of a set of pivots is the set of elements commuting with
// all of them. It is closed under the operations of the ambient structure:
//
//	c := commute.NewSubgroup(d4, commute.DefaultOptions(), d4.Rotation(1))
//	x, _ := c.Lookup(d4.Rotation(2))
//	y, _ := c.Lookup(d4.Rotation(3))
//	xy, err := c.Mul(x, y) // member with one witness per pivot
//
// Membership scans run in parallel with errgroup once the number of checks
// reaches Options.ParallelThreshold.
//
// # Homomorphisms
//
// Inverses are handled by transport along a monoid homomorphism f from a
// group. If a commutes with f(b) then a commutes with f(b⁻¹):
//
//	h2, err := commute.TransportInvRight(src, dst, f, b, h)
//
// InvRight, InvLeft and InvInv are transport along the identity map.
//
// # Testing
//
// Use assertions to validate structures and witnesses:
//
//	func TestMyGroup(t *testing.T) {
//	    commute.AssertLaws(t, myGroup, samples)
//	    commute.AssertSubgroupClosed(t, commute.NewSubgroup(myGroup, commute.SequentialOptions(), p), samples)
//	}
package commute
