// Package structures provides concrete algebraic structures for the
// commute package: integers, integers modulo n, dihedral and symmetric
// groups, and 2×2 matrices.
//
// Every finite structure exposes Elements for enumeration and Parse for
// reading elements from text, which is what the commute CLI relies on.
// Structures are stateless values; their methods are safe for concurrent
// use.
package structures
