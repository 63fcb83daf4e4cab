package commute

import (
	"errors"
	"testing"

	"github.com/alexshd/commute/structures"
)

// subtraction is a magma, not a semigroup.
type subtraction struct{}

func (subtraction) Mul(a, b int64) int64  { return a - b }
func (subtraction) Equal(a, b int64) bool { return a == b }

// TestVerify_Group records group laws and detects non-commutativity.
func TestVerify_Group(t *testing.T) {
	d4 := structures.Dihedral{N: 4}

	v, err := Verify[structures.Sym]("D4", d4, d4.Elements())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if v.Kind != KindGroup {
		t.Errorf("kind = %s, want group", v.Kind)
	}
	for _, law := range []Law{LawAssociative, LawIdentity, LawInverse} {
		if !v.Has(law) {
			t.Errorf("missing law %s (have %v)", law, v.Laws)
		}
	}
	if v.Has(LawCommutative) {
		t.Error("D4 is not commutative")
	}
	if v.Properties["noncommuting"] == "" {
		t.Error("expected a recorded non-commuting pair")
	}

	t.Logf("✓ %s %s: %v", v.Name, v.Kind, v.Laws)
}

// TestVerify_Ring checks the additive and distributive laws.
func TestVerify_Ring(t *testing.T) {
	r := structures.Mat2Mod{N: 2}

	v, err := Verify[structures.Mat2]("", r, r.Elements())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if v.Kind != KindRing {
		t.Errorf("kind = %s, want ring", v.Kind)
	}
	if v.Name != v.TypeName || v.TypeName != "structures.Mat2Mod" {
		t.Errorf("default name = %q, type = %q", v.Name, v.TypeName)
	}
	for _, law := range []Law{LawDistributive, LawAddInverse, LawAddCommutative, LawMulZero} {
		if !v.Has(law) {
			t.Errorf("missing law %s", law)
		}
	}

	z, err := Verify[int64]("Z/6", structures.ZMod{N: 6}, structures.ZMod{N: 6}.Elements())
	if err != nil {
		t.Fatalf("Verify Z/6: %v", err)
	}
	if !z.Has(LawCommutative) {
		t.Error("Z/6 is commutative")
	}
}

// TestVerify_RejectsNonAssociative reports a counterexample.
func TestVerify_RejectsNonAssociative(t *testing.T) {
	_, err := Verify[int64]("sub", subtraction{}, []int64{1, 2, 3})
	if !errors.Is(err, ErrLawViolated) {
		t.Fatalf("expected ErrLawViolated, got %v", err)
	}
	if KindOf[int64](subtraction{}) != KindSemigroup {
		t.Error("subtraction only implements the semigroup methods")
	}

	t.Logf("✓ Correctly rejected: %v", err)
}

// TestLawChecker_Registry covers Register, Require and the global registry.
func TestLawChecker_Registry(t *testing.T) {
	checker := NewLawChecker()

	s3 := structures.Symmetric{N: 3}
	if _, err := VerifyAndRegister[structures.Perm](checker, "S3", s3, s3.Elements()); err != nil {
		t.Fatalf("VerifyAndRegister: %v", err)
	}
	if _, err := VerifyAndRegister[int64](checker, "sub", subtraction{}, []int64{1, 2}); err == nil {
		t.Fatal("subtraction must not register")
	}

	if err := checker.Require("S3", LawAssociative, LawInverse); err != nil {
		t.Errorf("Require: %v", err)
	}
	if err := checker.Require("S3", LawCommutative); !errors.Is(err, ErrNotVerified) {
		t.Errorf("expected ErrNotVerified for missing law, got %v", err)
	}
	if err := checker.Require("sub"); !errors.Is(err, ErrNotVerified) {
		t.Errorf("expected ErrNotVerified for unregistered name, got %v", err)
	}
	if names := checker.Names(); len(names) != 1 || names[0] != "S3" {
		t.Errorf("Names() = %v", names)
	}

	v, _ := checker.IsVerified("S3")
	Register(v)
	if err := Require("S3", LawIdentity); err != nil {
		t.Errorf("global Require: %v", err)
	}
	if _, ok := IsVerified("S3"); !ok {
		t.Error("global registry lost S3")
	}
}
