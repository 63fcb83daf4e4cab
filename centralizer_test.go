package commute

import (
	"errors"
	"slices"
	"testing"

	"github.com/alexshd/commute/structures"
)

// TestCentralizer_DihedralRotation: the centralizer of a 90° rotation in D4
// is the rotation subgroup, a strict subgroup of a non-abelian group.
func TestCentralizer_DihedralRotation(t *testing.T) {
	d4 := structures.Dihedral{N: 4}
	elems := d4.Elements()
	r1 := d4.Rotation(1)

	c := NewSubgroup[structures.Sym](d4, SequentialOptions(), r1)

	if !c.Contains(d4.One()) {
		t.Fatal("centralizer must contain the identity")
	}

	members := c.Enumerate(elems)
	want := []structures.Sym{d4.Rotation(0), d4.Rotation(1), d4.Rotation(2), d4.Rotation(3)}
	if !slices.Equal(members, want) {
		t.Errorf("C(r1) = %v, want %v", members, want)
	}
	if !c.IsStrict(elems) {
		t.Error("C(r1) should be a strict subgroup of D4")
	}

	AssertSubgroupClosed(t, c, elems)

	t.Logf("✓ C(r1) = %v (order %d of %d)", members, len(members), len(elems))
}

// TestCentralizer_EmptyPivotsIsWholeStructure checks vacuous membership.
func TestCentralizer_EmptyPivotsIsWholeStructure(t *testing.T) {
	s3 := structures.Symmetric{N: 3}
	elems := s3.Elements()

	c := SetCentralizer[structures.Perm](s3)

	if got := c.Enumerate(elems); len(got) != len(elems) {
		t.Errorf("empty pivot set should admit all %d elements, got %d", len(elems), len(got))
	}
	if c.IsStrict(elems) {
		t.Error("empty pivot set must not be strict")
	}
	m, ok := c.Lookup(s3.Cycle())
	if !ok {
		t.Fatal("lookup failed with no pivots")
	}
	if len(m.Witnesses()) != 0 {
		t.Errorf("no pivots means no witnesses, got %d", len(m.Witnesses()))
	}
}

// TestCentralizer_SetOfPivots intersects single-pivot centralizers.
func TestCentralizer_SetOfPivots(t *testing.T) {
	s4 := structures.Symmetric{N: 4}
	elems := s4.Elements()
	t01 := s4.Transposition(0, 1)
	t23 := s4.Transposition(2, 3)

	c01 := NewSubgroup[structures.Perm](s4, SequentialOptions(), t01)
	c23 := c01.WithPivots(t23)
	both := c01.WithPivots(t01, t23)

	// C(01) in S4 is <(01), (23)>, of order 4.
	if got := len(c01.Enumerate(elems)); got != 4 {
		t.Errorf("|C((01))| = %d, want 4", got)
	}

	var want []structures.Perm
	for _, x := range elems {
		if c01.Contains(x) && c23.Contains(x) {
			want = append(want, x)
		}
	}
	got := both.Enumerate(elems)
	if len(got) != len(want) {
		t.Fatalf("set centralizer has %d members, intersection has %d", len(got), len(want))
	}
	for i := range got {
		if !s4.Equal(got[i], want[i]) {
			t.Errorf("member %d: %v ≠ %v", i, got[i], want[i])
		}
	}

	AssertSubgroupClosed(t, both, elems)
}

// TestCentralizer_ClosureOperations exercises each closure operation and
// its witnesses directly.
func TestCentralizer_ClosureOperations(t *testing.T) {
	d6 := structures.Dihedral{N: 6}
	c := NewSubgroup[structures.Sym](d6, SequentialOptions(), d6.Rotation(2))

	x, ok := c.Lookup(d6.Rotation(1))
	if !ok {
		t.Fatal("r1 commutes with r2")
	}
	y, ok := c.Lookup(d6.Rotation(3))
	if !ok {
		t.Fatal("r3 commutes with r2")
	}
	if _, ok := c.Lookup(d6.Reflection(0)); ok {
		t.Fatal("s0 does not commute with r2 in D6")
	}

	xy, err := c.Mul(x, y)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !d6.Equal(xy.Value(), d6.Rotation(4)) {
		t.Errorf("r1·r3 = %v, want r4", xy.Value())
	}

	inv, err := c.Inv(x)
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	if !d6.Equal(inv.Value(), d6.Rotation(5)) {
		t.Errorf("r1⁻¹ = %v, want r5", inv.Value())
	}

	p, err := c.Pow(x, 4)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	z, err := c.ZPow(x, IntExponent(-2))
	if err != nil {
		t.Fatalf("ZPow: %v", err)
	}
	if !d6.Equal(p.Value(), z.Value()) {
		t.Errorf("r1^4 = %v and r1^-2 = %v should agree in D6", p.Value(), z.Value())
	}

	for _, m := range []Member[structures.Sym]{c.One(), xy, inv, p, z} {
		for _, h := range m.Witnesses() {
			if !h.Verify(d6) {
				t.Errorf("witness %v for %v does not verify", h, m)
			}
		}
	}
}

// TestCentralizer_ForeignMember rejects members issued elsewhere.
func TestCentralizer_ForeignMember(t *testing.T) {
	d4 := structures.Dihedral{N: 4}
	c1 := NewSubgroup[structures.Sym](d4, SequentialOptions(), d4.Rotation(1))
	c2 := c1.WithPivots(d4.Rotation(1))

	x, _ := c1.Lookup(d4.Rotation(2))
	y, _ := c2.Lookup(d4.Rotation(2))

	if _, err := c1.Mul(x, y); !errors.Is(err, ErrForeignMember) {
		t.Errorf("expected ErrForeignMember, got %v", err)
	}
	if _, err := c2.Inv(x); !errors.Is(err, ErrForeignMember) {
		t.Errorf("expected ErrForeignMember, got %v", err)
	}
	if _, err := c1.Mul(x, Member[structures.Sym]{}); !errors.Is(err, ErrForeignMember) {
		t.Errorf("expected ErrForeignMember for zero member, got %v", err)
	}
}

// TestSubring_MatricesModTwo checks additive closure in a finite
// non-commutative ring.
func TestSubring_MatricesModTwo(t *testing.T) {
	r := structures.Mat2Mod{N: 2}
	elems := r.Elements()
	shear := structures.Mat2{1, 1, 0, 1}

	c := NewSubring[structures.Mat2](r, SequentialOptions(), shear)

	members := c.Enumerate(elems)
	// Polynomials in the shear over F2: a·I + b·N with N nilpotent.
	if len(members) != 4 {
		t.Errorf("|C(shear)| = %d, want 4: %v", len(members), members)
	}
	if !c.Contains(r.Zero()) {
		t.Error("subring must contain zero")
	}

	AssertSubringClosed(t, c, elems)
}

// TestSubsemiring_Integers uses the semiring handle over an infinite ring.
func TestSubsemiring_Integers(t *testing.T) {
	var z structures.IntRing
	c := NewSubsemiring[int64](z, SequentialOptions(), 7, -3)

	x, ok := c.Lookup(5)
	if !ok {
		t.Fatal("integers commute")
	}
	sum, err := c.Add(x, c.Zero())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Value() != 5 || len(sum.Witnesses()) != 2 {
		t.Errorf("5+0 = %v with %d witnesses", sum.Value(), len(sum.Witnesses()))
	}
	for _, h := range sum.Witnesses() {
		if h.Rule() != "add_right" || !h.Verify(z) {
			t.Errorf("unexpected witness %v", h)
		}
	}
}

// TestCentralizer_ParallelMatchesSequential runs the errgroup scans.
func TestCentralizer_ParallelMatchesSequential(t *testing.T) {
	r := structures.Mat2Mod{N: 3}
	elems := r.Elements()
	pivots := []structures.Mat2{{1, 1, 0, 1}, {2, 0, 0, 1}, {1, 0, 0, 1}}

	parallel := Options{Parallelism: 4, ParallelThreshold: 2}
	seq := NewSubmonoid[structures.Mat2](r, SequentialOptions(), pivots...)
	par := NewSubmonoid[structures.Mat2](r, parallel, pivots...)

	got, want := par.Enumerate(elems), seq.Enumerate(elems)
	if !slices.Equal(got, want) {
		t.Fatalf("parallel enumerate = %v, sequential = %v", got, want)
	}

	for _, x := range elems {
		pm, pok := par.Lookup(x)
		_, sok := seq.Lookup(x)
		if pok != sok {
			t.Fatalf("membership of %v differs: parallel=%v sequential=%v", x, pok, sok)
		}
		if pok && len(pm.Witnesses()) != len(pivots) {
			t.Errorf("member %v has %d witnesses, want %d", x, len(pm.Witnesses()), len(pivots))
		}
	}

	AssertCentralizerClosed(t, par, elems)
	t.Logf("✓ %d of %d matrices commute with all pivots", len(got), len(elems))
}

// TestCentralizer_PivotsAreCopied keeps handles immutable.
func TestCentralizer_PivotsAreCopied(t *testing.T) {
	var z structures.IntMul
	pivots := []int64{2, 3}
	c := SetCentralizer[int64](z, pivots...)

	pivots[0] = 99
	got := c.Pivots()
	got[1] = 42
	if p := c.Pivots(); p[0] != 2 || p[1] != 3 {
		t.Errorf("pivots mutated through aliases: %v", p)
	}
	if single := Centralizer[int64](z, 5); len(single.Pivots()) != 1 {
		t.Errorf("single-pivot centralizer has pivots %v", single.Pivots())
	}
}

// TestCentralizer_SliceElementsAreCloned: mutating the caller's permutation
// after building or looking up must not change the handle.
func TestCentralizer_SliceElementsAreCloned(t *testing.T) {
	s3 := structures.Symmetric{N: 3}
	elems := s3.Elements()
	pivot := s3.Transposition(0, 1)

	c := NewSubgroup[structures.Perm](s3, SequentialOptions(), pivot)
	if got := len(c.Enumerate(elems)); got != 2 {
		t.Fatalf("|C((01))| = %d, want 2", got)
	}

	pivot[0], pivot[1] = 0, 1 // now the identity
	if got := len(c.Enumerate(elems)); got != 2 {
		t.Errorf("|C((01))| = %d after caller mutation, want 2", got)
	}

	ps := c.Pivots()
	ps[0][2] = 7
	if p := c.Pivots()[0]; !s3.Equal(p, s3.Transposition(0, 1)) {
		t.Errorf("pivot changed through Pivots(): %v", p)
	}

	x := s3.Transposition(0, 1)
	m, ok := c.Lookup(x)
	if !ok {
		t.Fatal("(01) commutes with itself")
	}
	x[0], x[1] = 0, 1
	if !s3.Equal(m.Value(), s3.Transposition(0, 1)) {
		t.Errorf("member value changed with the caller's slice: %v", m.Value())
	}
	for _, h := range m.Witnesses() {
		if !h.Verify(s3) || !s3.Equal(h.Right(), m.Value()) {
			t.Errorf("witness %v no longer describes %v", h, m.Value())
		}
	}
}
