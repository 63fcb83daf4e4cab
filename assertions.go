package commute

import "testing"

// AssertionConfig bounds the work done by the Assert helpers.
type AssertionConfig struct {
	// Largest exponent checked by the power and product laws
	MaxExponent uint

	// Samples beyond this count are ignored (laws are checked on pairs or
	// triples, so cost grows quickly)
	MaxSamples int
}

// DefaultAssertionConfig returns bounds that keep helpers fast on small
// finite structures.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxExponent: 8,
		MaxSamples:  24,
	}
}

func clipSamples[T any](samples []T, cfg AssertionConfig) []T {
	if cfg.MaxSamples > 0 && len(samples) > cfg.MaxSamples {
		return samples[:cfg.MaxSamples]
	}
	return samples
}

// AssertReflexive verifies commutes(a, a) for every sample.
func AssertReflexive[T any](t testing.TB, s Semigroup[T], samples []T, cfg AssertionConfig) {
	t.Helper()

	for _, a := range clipSamples(samples, cfg) {
		if !Commutes(s, a, a) {
			t.Errorf("Reflexivity failed: %v does not commute with itself", a)
		}
		if !Refl(a).Verify(s) {
			t.Errorf("Refl(%v) does not verify", a)
		}
	}
}

// AssertSymmetric verifies commutes(a, b) ⇔ commutes(b, a) and that Symm
// of a checked witness verifies.
func AssertSymmetric[T any](t testing.TB, s Semigroup[T], samples []T, cfg AssertionConfig) {
	t.Helper()

	samples = clipSamples(samples, cfg)
	for _, a := range samples {
		for _, b := range samples {
			if Commutes(s, a, b) != Commutes(s, b, a) {
				t.Errorf("Symmetry failed for (%v, %v)", a, b)
				continue
			}
			if h, ok := Check(s, a, b); ok && !h.Symm().Verify(s) {
				t.Errorf("Symm of %v does not verify", h)
			}
		}
	}
}

// AssertComposition verifies that MulRight and MulLeft witnesses built from
// checked premises verify.
func AssertComposition[T any](t testing.TB, s Semigroup[T], samples []T, cfg AssertionConfig) {
	t.Helper()

	samples = clipSamples(samples, cfg)
	for _, a := range samples {
		for _, b := range samples {
			hab, ok := Check(s, a, b)
			if !ok {
				continue
			}
			for _, c := range samples {
				hac, ok := Check(s, a, c)
				if !ok {
					continue
				}
				h, err := MulRight(s, hab, hac)
				if err != nil {
					t.Fatalf("MulRight(%v, %v): %v", hab, hac, err)
				}
				if !h.Verify(s) {
					t.Errorf("Composition failed: %v commutes with %v and %v but not with their product", a, b, c)
				}
				hl, err := MulLeft(s, hab.Symm(), hac.Symm())
				if err != nil {
					t.Fatalf("MulLeft: %v", err)
				}
				if !hl.Verify(s) {
					t.Errorf("Left composition failed for (%v, %v, %v)", a, b, c)
				}
			}
		}
	}
}

// AssertPowerLaw verifies commutes(a, b^n), commutes(a^n, b) and
// commutes(a^n, b^k) for every commuting sample pair and n, k ≤ MaxExponent.
func AssertPowerLaw[T any](t testing.TB, m Monoid[T], samples []T, cfg AssertionConfig) {
	t.Helper()

	samples = clipSamples(samples, cfg)
	for _, a := range samples {
		for _, b := range samples {
			h, ok := Check(m, a, b)
			if !ok {
				continue
			}
			for n := uint(0); n <= cfg.MaxExponent; n++ {
				right, err := PowRight(m, h, n)
				if err != nil {
					t.Fatalf("PowRight(%v, %d): %v", h, n, err)
				}
				if !m.Equal(right.Right(), Pow(m, b, n)) || !right.Verify(m) {
					t.Errorf("Power law failed: commutes(%v, %v^%d)", a, b, n)
				}
				left, err := PowLeft(m, h, n)
				if err != nil {
					t.Fatalf("PowLeft(%v, %d): %v", h, n, err)
				}
				if !left.Verify(m) {
					t.Errorf("Power law failed: commutes(%v^%d, %v)", a, n, b)
				}
			}
			both, err := PowPow(m, h, cfg.MaxExponent, cfg.MaxExponent/2+1)
			if err != nil {
				t.Fatalf("PowPow(%v): %v", h, err)
			}
			if !both.Verify(m) {
				t.Errorf("Power law failed: %v", both)
			}
		}
	}
}

// AssertProductLaw verifies (ab)^n = a^n·b^n for commuting sample pairs.
func AssertProductLaw[T any](t testing.TB, m Monoid[T], samples []T, cfg AssertionConfig) {
	t.Helper()

	samples = clipSamples(samples, cfg)
	for _, a := range samples {
		for _, b := range samples {
			h, ok := Check(m, a, b)
			if !ok {
				continue
			}
			for n := uint(0); n <= cfg.MaxExponent; n++ {
				id, err := MulPow(m, h, n)
				if err != nil {
					t.Fatalf("MulPow(%v, %d): %v", h, n, err)
				}
				if !id.Holds(m) {
					t.Errorf("Product law failed: (%v·%v)^%d = %v, %v^%d·%v^%d = %v",
						a, b, n, id.LHS(), a, n, b, n, id.RHS())
				}
			}
		}
	}
}

// AssertCentralizerClosed verifies, over a finite universe, that c contains
// the identity, is closed under multiplication and that every issued member
// carries verifying witnesses.
func AssertCentralizerClosed[T any](t testing.TB, c *Submonoid[T], universe []T) {
	t.Helper()

	one := c.One()
	if !c.Contains(one.Value()) {
		t.Errorf("Centralizer does not contain the identity %v", one.Value())
	}
	members := lookupAll(t, c, universe)
	for _, x := range members {
		for _, y := range members {
			xy, err := c.Mul(x, y)
			if err != nil {
				t.Fatalf("Mul(%v, %v): %v", x, y, err)
			}
			if !c.Contains(xy.Value()) {
				t.Errorf("Centralizer not closed: %v·%v = %v is not a member", x.Value(), y.Value(), xy.Value())
			}
			assertWitnesses(t, c.m, xy)
		}
	}
}

// AssertSubgroupClosed adds closure under inverses to AssertCentralizerClosed.
func AssertSubgroupClosed[T any](t testing.TB, c *Subgroup[T], universe []T) {
	t.Helper()

	AssertCentralizerClosed(t, c.Submonoid, universe)
	for _, x := range lookupAll(t, c.Submonoid, universe) {
		inv, err := c.Inv(x)
		if err != nil {
			t.Fatalf("Inv(%v): %v", x, err)
		}
		if !c.Contains(inv.Value()) {
			t.Errorf("Subgroup not closed: %v⁻¹ = %v is not a member", x.Value(), inv.Value())
		}
		assertWitnesses(t, c.m, inv)
	}
}

// AssertSubringClosed adds zero and closure under addition, negation and
// subtraction to AssertCentralizerClosed.
func AssertSubringClosed[T any](t testing.TB, c *Subring[T], universe []T) {
	t.Helper()

	AssertCentralizerClosed(t, c.Submonoid, universe)
	zero := c.Zero()
	if !c.Contains(zero.Value()) {
		t.Errorf("Subring does not contain zero %v", zero.Value())
	}
	members := lookupAll(t, c.Submonoid, universe)
	for _, x := range members {
		neg, err := c.Neg(x)
		if err != nil {
			t.Fatalf("Neg(%v): %v", x, err)
		}
		if !c.Contains(neg.Value()) {
			t.Errorf("Subring not closed: -%v = %v is not a member", x.Value(), neg.Value())
		}
		for _, y := range members {
			sum, err := c.Add(x, y)
			if err != nil {
				t.Fatalf("Add(%v, %v): %v", x, y, err)
			}
			diff, err := c.Sub(x, y)
			if err != nil {
				t.Fatalf("Sub(%v, %v): %v", x, y, err)
			}
			if !c.Contains(sum.Value()) || !c.Contains(diff.Value()) {
				t.Errorf("Subring not closed under %v ± %v", x.Value(), y.Value())
			}
			assertWitnesses(t, c.m, sum)
			assertWitnesses(t, c.m, diff)
		}
	}
}

// AssertLaws runs the relation and power laws as subtests.
func AssertLaws[T any](t *testing.T, m Monoid[T], samples []T) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("Reflexive", func(t *testing.T) {
		AssertReflexive(t, m, samples, cfg)
	})

	t.Run("Symmetric", func(t *testing.T) {
		AssertSymmetric(t, m, samples, cfg)
	})

	t.Run("Composition", func(t *testing.T) {
		AssertComposition(t, m, samples, cfg)
	})

	t.Run("PowerLaw", func(t *testing.T) {
		AssertPowerLaw(t, m, samples, cfg)
	})

	t.Run("ProductLaw", func(t *testing.T) {
		AssertProductLaw(t, m, samples, cfg)
	})
}

func lookupAll[T any](t testing.TB, c *Submonoid[T], universe []T) []Member[T] {
	t.Helper()

	var members []Member[T]
	for _, x := range c.Enumerate(universe) {
		mem, ok := c.Lookup(x)
		if !ok {
			t.Fatalf("Enumerate returned %v but Lookup rejects it", x)
		}
		members = append(members, mem)
	}
	return members
}

func assertWitnesses[T any](t testing.TB, s Semigroup[T], x Member[T]) {
	t.Helper()

	for _, h := range x.Witnesses() {
		if !s.Equal(h.Right(), x.Value()) {
			t.Errorf("Witness %v is not about member %v", h, x.Value())
		}
		if !h.Verify(s) {
			t.Errorf("Witness %v does not verify", h)
		}
	}
}
