package commute

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"
)

// Law names an axiom that LawChecker can sample.
type Law string

const (
	LawAssociative    Law = "Associative"    // (ab)c = a(bc)
	LawIdentity       Law = "Identity"       // 1a = a1 = a
	LawInverse        Law = "Inverse"        // aa⁻¹ = a⁻¹a = 1
	LawCommutative    Law = "Commutative"    // ab = ba (informational)
	LawAddAssociative Law = "AddAssociative" // (a+b)+c = a+(b+c)
	LawAddCommutative Law = "AddCommutative" // a+b = b+a
	LawAddIdentity    Law = "AddIdentity"    // 0+a = a
	LawAddInverse     Law = "AddInverse"     // a+(-a) = 0
	LawDistributive   Law = "Distributive"   // a(b+c) = ab+ac, (a+b)c = ac+bc
	LawMulZero        Law = "MulZero"        // 0a = a0 = 0
)

// Kind names the strongest capability a structure implements.
type Kind string

const (
	KindSemigroup Kind = "semigroup"
	KindMonoid    Kind = "monoid"
	KindGroup     Kind = "group"
	KindSemiring  Kind = "semiring"
	KindRing      Kind = "ring"
)

// LawVerified records which laws a structure passed on a sample set.
type LawVerified struct {
	Name       string            // Registry key
	TypeName   string            // Go type of the structure
	Kind       Kind              // Strongest capability detected
	Laws       []Law             // Laws that held on every sample
	Samples    int               // Sample count
	TestedAt   time.Time         // When the check ran
	Properties map[string]string // Additional metadata
}

// Has reports whether law was verified.
func (v LawVerified) Has(law Law) bool {
	return slices.Contains(v.Laws, law)
}

// KindOf returns the strongest capability s implements.
func KindOf[T any](s Semigroup[T]) Kind {
	switch s.(type) {
	case Ring[T]:
		return KindRing
	case Semiring[T]:
		return KindSemiring
	case Group[T]:
		return KindGroup
	case Monoid[T]:
		return KindMonoid
	default:
		return KindSemigroup
	}
}

// Verify samples every law implied by the capabilities s implements. A
// violated law yields ErrLawViolated naming the counterexample. The
// commutative law is informational: it is listed when it holds and never
// causes an error.
//
// Cost is cubic in len(samples); keep sample sets small.
func Verify[T any](name string, s Semigroup[T], samples []T) (LawVerified, error) {
	if name == "" {
		name = reflect.TypeOf(s).String()
	}
	v := LawVerified{
		Name:       name,
		TypeName:   reflect.TypeOf(s).String(),
		Kind:       KindOf(s),
		Samples:    len(samples),
		TestedAt:   time.Now(),
		Properties: map[string]string{},
	}
	fail := func(law Law, format string, args ...any) (LawVerified, error) {
		return v, fmt.Errorf("%w: %s %s: %s", ErrLawViolated, name, law, fmt.Sprintf(format, args...))
	}

	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if !s.Equal(s.Mul(s.Mul(a, b), c), s.Mul(a, s.Mul(b, c))) {
					return fail(LawAssociative, "(%v·%v)·%v ≠ %v·(%v·%v)", a, b, c, a, b, c)
				}
			}
		}
	}
	v.Laws = append(v.Laws, LawAssociative)

	if m, ok := s.(Monoid[T]); ok {
		one := m.One()
		for _, a := range samples {
			if !m.Equal(m.Mul(one, a), a) || !m.Equal(m.Mul(a, one), a) {
				return fail(LawIdentity, "1·%v or %v·1 ≠ %v", a, a, a)
			}
		}
		v.Laws = append(v.Laws, LawIdentity)
	}

	if g, ok := s.(Group[T]); ok {
		one := g.One()
		for _, a := range samples {
			inv := g.Inv(a)
			if !g.Equal(g.Mul(a, inv), one) || !g.Equal(g.Mul(inv, a), one) {
				return fail(LawInverse, "%v·%v⁻¹ ≠ 1", a, a)
			}
		}
		v.Laws = append(v.Laws, LawInverse)
	}

	if r, ok := s.(Semiring[T]); ok {
		if err := verifySemiring(r, samples, &v); err != nil {
			return v, fmt.Errorf("%s: %w", name, err)
		}
	}

	if r, ok := s.(Ring[T]); ok {
		zero := r.Zero()
		for _, a := range samples {
			if !r.Equal(r.Add(a, r.Neg(a)), zero) {
				return fail(LawAddInverse, "%v+(-%v) ≠ 0", a, a)
			}
		}
		v.Laws = append(v.Laws, LawAddInverse)
	}

	commutative := true
	for i, a := range samples {
		for _, b := range samples[i+1:] {
			if !Commutes(s, a, b) {
				commutative = false
				v.Properties["noncommuting"] = fmt.Sprintf("%v, %v", a, b)
				break
			}
		}
		if !commutative {
			break
		}
	}
	if commutative {
		v.Laws = append(v.Laws, LawCommutative)
	}
	return v, nil
}

func verifySemiring[T any](r Semiring[T], samples []T, v *LawVerified) error {
	zero := r.Zero()
	violated := func(law Law, format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrLawViolated, law, fmt.Sprintf(format, args...))
	}
	for _, a := range samples {
		if !r.Equal(r.Add(zero, a), a) {
			return violated(LawAddIdentity, "0+%v ≠ %v", a, a)
		}
		if !r.Equal(r.Mul(zero, a), zero) || !r.Equal(r.Mul(a, zero), zero) {
			return violated(LawMulZero, "0·%v or %v·0 ≠ 0", a, a)
		}
		for _, b := range samples {
			if !r.Equal(r.Add(a, b), r.Add(b, a)) {
				return violated(LawAddCommutative, "%v+%v ≠ %v+%v", a, b, b, a)
			}
			for _, c := range samples {
				if !r.Equal(r.Add(r.Add(a, b), c), r.Add(a, r.Add(b, c))) {
					return violated(LawAddAssociative, "(%v+%v)+%v ≠ %v+(%v+%v)", a, b, c, a, b, c)
				}
				if !r.Equal(r.Mul(a, r.Add(b, c)), r.Add(r.Mul(a, b), r.Mul(a, c))) ||
					!r.Equal(r.Mul(r.Add(a, b), c), r.Add(r.Mul(a, c), r.Mul(b, c))) {
					return violated(LawDistributive, "a=%v b=%v c=%v", a, b, c)
				}
			}
		}
	}
	v.Laws = append(v.Laws, LawAddIdentity, LawMulZero, LawAddCommutative, LawAddAssociative, LawDistributive)
	return nil
}

// LawChecker is a registry of verified structures, safe for concurrent use.
type LawChecker struct {
	mu       sync.RWMutex
	verified map[string]LawVerified
}

// NewLawChecker creates a checker with an empty registry.
func NewLawChecker() *LawChecker {
	return &LawChecker{
		verified: make(map[string]LawVerified),
	}
}

// Register adds a verification record, replacing any earlier one.
func (r *LawChecker) Register(v LawVerified) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verified[v.Name] = v
}

// IsVerified looks up a record by name.
func (r *LawChecker) IsVerified(name string) (LawVerified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.verified[name]
	return v, ok
}

// Names returns the registered names, sorted.
func (r *LawChecker) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.verified))
	for name := range r.verified {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Require returns an error unless name is registered with every law.
func (r *LawChecker) Require(name string, laws ...Law) error {
	v, ok := r.IsVerified(name)
	if !ok {
		return fmt.Errorf("%w: %s not in registry", ErrNotVerified, name)
	}
	for _, law := range laws {
		if !v.Has(law) {
			return fmt.Errorf("%w: %s missing law %s (has: %v)", ErrNotVerified, name, law, v.Laws)
		}
	}
	return nil
}

// VerifyAndRegister runs Verify and registers the record on success.
func VerifyAndRegister[T any](r *LawChecker, name string, s Semigroup[T], samples []T) (LawVerified, error) {
	v, err := Verify(name, s, samples)
	if err != nil {
		return v, err
	}
	r.Register(v)
	return v, nil
}

var globalChecker = NewLawChecker()

// Register adds to the package-level registry.
func Register(v LawVerified) {
	globalChecker.Register(v)
}

// IsVerified looks up the package-level registry.
func IsVerified(name string) (LawVerified, bool) {
	return globalChecker.IsVerified(name)
}

// Require checks the package-level registry.
func Require(name string, laws ...Law) error {
	return globalChecker.Require(name, laws...)
}
