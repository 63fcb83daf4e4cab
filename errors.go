package commute

import "errors"

var (
	// ErrPremiseMismatch is returned when two witnesses are combined but do
	// not share the argument the combination rule requires.
	ErrPremiseMismatch = errors.New("commute: witnesses do not share an argument")

	// ErrForeignMember is returned when a closure operation receives a member
	// witness issued by a different centralizer.
	ErrForeignMember = errors.New("commute: member belongs to another centralizer")

	// ErrNotHomomorphism is returned by CheckHom when a map fails to preserve
	// the identity or the multiplication on some sample.
	ErrNotHomomorphism = errors.New("commute: map is not a monoid homomorphism")

	// ErrLawViolated is returned by LawChecker when a sampled axiom fails.
	ErrLawViolated = errors.New("commute: structure violates a declared law")

	// ErrNotVerified is returned when a structure is absent from the registry
	// or lacks a required law.
	ErrNotVerified = errors.New("commute: structure not verified")
)
