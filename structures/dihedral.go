package structures

import (
	"fmt"
	"strconv"
	"strings"
)

// Sym is an element r^Rot·s^Flip of a dihedral group: a rotation by Rot
// steps, followed by the reflection s when Flip is set.
type Sym struct {
	Rot  int
	Flip bool
}

func (x Sym) String() string {
	if x.Flip {
		return "s" + strconv.Itoa(x.Rot)
	}
	return "r" + strconv.Itoa(x.Rot)
}

// Dihedral is the symmetry group of a regular N-gon, of order 2N. It is
// non-abelian for N ≥ 3.
type Dihedral struct {
	N int
}

// NewDihedral returns D_n.
func NewDihedral(n int) (Dihedral, error) {
	if n < 1 {
		return Dihedral{}, fmt.Errorf("dihedral order must be positive, got %d", n)
	}
	return Dihedral{N: n}, nil
}

func (d Dihedral) mod(k int) int {
	k %= d.N
	if k < 0 {
		k += d.N
	}
	return k
}

func (d Dihedral) neg(k int) int {
	if k = d.mod(k); k == 0 {
		return 0
	}
	return d.N - k
}

// add stays exact for every N up to math.MaxInt.
func (d Dihedral) add(j, k int) int {
	return int((uint(d.mod(j)) + uint(d.mod(k))) % uint(d.N))
}

// Rotation returns r^k.
func (d Dihedral) Rotation(k int) Sym { return Sym{Rot: d.mod(k)} }

// Reflection returns r^k·s.
func (d Dihedral) Reflection(k int) Sym { return Sym{Rot: d.mod(k), Flip: true} }

// Mul composes using s·r = r⁻¹·s:
//
//	r^a s^f · r^b s^g = r^(a + (-1)^f b) s^(f+g)
func (d Dihedral) Mul(x, y Sym) Sym {
	b := y.Rot
	if x.Flip {
		b = d.neg(b)
	}
	return Sym{Rot: d.add(x.Rot, b), Flip: x.Flip != y.Flip}
}

func (d Dihedral) Equal(x, y Sym) bool {
	return d.mod(x.Rot) == d.mod(y.Rot) && x.Flip == y.Flip
}

func (d Dihedral) One() Sym { return Sym{} }

// Inv returns r^-a for rotations; reflections are involutions.
func (d Dihedral) Inv(x Sym) Sym {
	if x.Flip {
		return Sym{Rot: d.mod(x.Rot), Flip: true}
	}
	return Sym{Rot: d.neg(x.Rot)}
}

// Elements returns the N rotations followed by the N reflections.
func (d Dihedral) Elements() []Sym {
	out := make([]Sym, 0, 2*d.N)
	for k := 0; k < d.N; k++ {
		out = append(out, d.Rotation(k))
	}
	for k := 0; k < d.N; k++ {
		out = append(out, d.Reflection(k))
	}
	return out
}

// Parse reads "r<k>" (rotation) or "s<k>" (reflection).
func (d Dihedral) Parse(s string) (Sym, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != 'r' && s[0] != 's') {
		return Sym{}, fmt.Errorf("parse %q: want r<k> or s<k>", s)
	}
	k, err := strconv.Atoi(s[1:])
	if err != nil {
		return Sym{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if s[0] == 's' {
		return d.Reflection(k), nil
	}
	return d.Rotation(k), nil
}
