package structures

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ZMod is the ring of integers modulo N. Elements are kept in [0, N).
type ZMod struct {
	N int64
}

// NewZMod returns Z/nZ.
func NewZMod(n int64) (ZMod, error) {
	if n < 1 {
		return ZMod{}, fmt.Errorf("modulus must be positive, got %d", n)
	}
	return ZMod{N: n}, nil
}

func (z ZMod) norm(a int64) int64 {
	a %= z.N
	if a < 0 {
		a += z.N
	}
	return a
}

// mulMod and addMod work on the full 128-bit product and 64-bit sum, so
// every modulus up to math.MaxInt64 stays exact.
func (z ZMod) mulMod(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(z.norm(a)), uint64(z.norm(b)))
	return int64(bits.Rem64(hi, lo, uint64(z.N)))
}

func (z ZMod) addMod(a, b int64) int64 {
	return int64((uint64(z.norm(a)) + uint64(z.norm(b))) % uint64(z.N))
}

func (z ZMod) negMod(a int64) int64 {
	a = z.norm(a)
	if a == 0 {
		return 0
	}
	return z.N - a
}

func (z ZMod) Mul(a, b int64) int64  { return z.mulMod(a, b) }
func (z ZMod) Equal(a, b int64) bool { return z.norm(a) == z.norm(b) }
func (z ZMod) One() int64            { return z.norm(1) }
func (z ZMod) Add(a, b int64) int64  { return z.addMod(a, b) }
func (z ZMod) Zero() int64           { return 0 }
func (z ZMod) Neg(a int64) int64     { return z.negMod(a) }

// Elements returns 0, 1, ..., N-1.
func (z ZMod) Elements() []int64 {
	out := make([]int64, z.N)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

// Parse reads a decimal integer and reduces it modulo N.
func (z ZMod) Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return z.norm(v), nil
}

// ZAdd is the cyclic group Z/nZ under addition, written multiplicatively.
type ZAdd struct {
	N int64
}

func (z ZAdd) ring() ZMod                    { return ZMod(z) }
func (z ZAdd) Mul(a, b int64) int64          { return z.ring().Add(a, b) }
func (z ZAdd) Equal(a, b int64) bool         { return z.ring().Equal(a, b) }
func (z ZAdd) One() int64                    { return 0 }
func (z ZAdd) Inv(a int64) int64             { return z.ring().Neg(a) }
func (z ZAdd) Elements() []int64             { return z.ring().Elements() }
func (z ZAdd) Parse(s string) (int64, error) { return z.ring().Parse(s) }

// Units is the multiplicative group of units of Z/nZ.
type Units struct {
	N int64
}

func (u Units) ring() ZMod            { return ZMod(u) }
func (u Units) Mul(a, b int64) int64  { return u.ring().Mul(a, b) }
func (u Units) Equal(a, b int64) bool { return u.ring().Equal(a, b) }
func (u Units) One() int64            { return u.ring().One() }

// Inv returns the inverse of a unit. For a non-unit it returns 0, which is
// never a unit when N > 1.
func (u Units) Inv(a int64) int64 {
	inv, ok := modInverse(u.ring().norm(a), u.N)
	if !ok {
		return 0
	}
	return inv
}

// Elements returns the residues coprime to N.
func (u Units) Elements() []int64 {
	var out []int64
	for a := int64(0); a < u.N; a++ {
		if gcd(a, u.N) == 1 {
			out = append(out, a)
		}
	}
	return out
}

// Parse reads a residue and rejects non-units.
func (u Units) Parse(s string) (int64, error) {
	v, err := u.ring().Parse(s)
	if err != nil {
		return 0, err
	}
	if gcd(v, u.N) != 1 {
		return 0, fmt.Errorf("%d is not a unit modulo %d", v, u.N)
	}
	return v, nil
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse solves a·x ≡ 1 (mod n) with the extended Euclidean algorithm.
func modInverse(a, n int64) (int64, bool) {
	t, newT := int64(0), int64(1)
	r, newR := n, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, n == 1
	}
	if t < 0 {
		t += n
	}
	return t, true
}
