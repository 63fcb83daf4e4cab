package structures

import (
	"fmt"
	"strconv"
	"strings"
)

// Mat2 is a 2×2 integer matrix in row-major order:
//
//	| m[0] m[1] |
//	| m[2] m[3] |
type Mat2 [4]int64

func (m Mat2) String() string {
	return fmt.Sprintf("[%d %d; %d %d]", m[0], m[1], m[2], m[3])
}

// Det returns the determinant.
func (m Mat2) Det() int64 { return m[0]*m[3] - m[1]*m[2] }

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

func mul2(a, b Mat2) Mat2 {
	return Mat2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// Mat2Ring is the ring of 2×2 int64 matrices with wrapping arithmetic. It is
// not commutative.
type Mat2Ring struct{}

func (Mat2Ring) Mul(a, b Mat2) Mat2   { return mul2(a, b) }
func (Mat2Ring) Equal(a, b Mat2) bool { return a == b }
func (Mat2Ring) One() Mat2            { return Identity2() }
func (Mat2Ring) Add(a, b Mat2) Mat2 {
	return Mat2{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}
func (Mat2Ring) Zero() Mat2      { return Mat2{} }
func (Mat2Ring) Neg(a Mat2) Mat2 { return Mat2{-a[0], -a[1], -a[2], -a[3]} }

// Mat2Mod is the ring of 2×2 matrices over Z/NZ, of order N⁴.
type Mat2Mod struct {
	N int64
}

func (r Mat2Mod) norm(a Mat2) Mat2 {
	z := ZMod{N: r.N}
	return Mat2{z.norm(a[0]), z.norm(a[1]), z.norm(a[2]), z.norm(a[3])}
}

func (r Mat2Mod) z() ZMod { return ZMod{N: r.N} }

// dot returns x·y + u·v modulo N without intermediate overflow.
func (r Mat2Mod) dot(x, y, u, v int64) int64 {
	z := r.z()
	return z.addMod(z.mulMod(x, y), z.mulMod(u, v))
}

func (r Mat2Mod) Mul(a, b Mat2) Mat2 {
	return Mat2{
		r.dot(a[0], b[0], a[1], b[2]), r.dot(a[0], b[1], a[1], b[3]),
		r.dot(a[2], b[0], a[3], b[2]), r.dot(a[2], b[1], a[3], b[3]),
	}
}

func (r Mat2Mod) Equal(a, b Mat2) bool { return r.norm(a) == r.norm(b) }
func (r Mat2Mod) One() Mat2            { return r.norm(Identity2()) }

func (r Mat2Mod) Add(a, b Mat2) Mat2 {
	z := r.z()
	return Mat2{z.addMod(a[0], b[0]), z.addMod(a[1], b[1]), z.addMod(a[2], b[2]), z.addMod(a[3], b[3])}
}

func (r Mat2Mod) Zero() Mat2 { return Mat2{} }

func (r Mat2Mod) Neg(a Mat2) Mat2 {
	z := r.z()
	return Mat2{z.negMod(a[0]), z.negMod(a[1]), z.negMod(a[2]), z.negMod(a[3])}
}

// det returns the determinant modulo N.
func (r Mat2Mod) det(a Mat2) int64 {
	z := r.z()
	return z.addMod(z.mulMod(a[0], a[3]), z.negMod(z.mulMod(a[1], a[2])))
}

// Elements returns all N⁴ matrices.
func (r Mat2Mod) Elements() []Mat2 {
	n := r.N
	out := make([]Mat2, 0, n*n*n*n)
	for a := int64(0); a < n; a++ {
		for b := int64(0); b < n; b++ {
			for c := int64(0); c < n; c++ {
				for d := int64(0); d < n; d++ {
					out = append(out, Mat2{a, b, c, d})
				}
			}
		}
	}
	return out
}

// Parse reads "a,b;c,d" (optionally bracketed) and reduces modulo N.
func (r Mat2Mod) Parse(s string) (Mat2, error) {
	m, err := ParseMat2(s)
	if err != nil {
		return Mat2{}, err
	}
	return r.norm(m), nil
}

// ParseMat2 reads "a,b;c,d" or "[a b; c d]".
func ParseMat2(s string) (Mat2, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	rows := strings.Split(s, ";")
	if len(rows) != 2 {
		return Mat2{}, fmt.Errorf("parse %q: want two rows separated by ';'", s)
	}
	var m Mat2
	for i, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) != 2 {
			return Mat2{}, fmt.Errorf("parse %q: row %d wants two entries", s, i)
		}
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return Mat2{}, fmt.Errorf("parse %q: %w", s, err)
			}
			m[2*i+j] = v
		}
	}
	return m, nil
}

// GL2Mod is the group of invertible 2×2 matrices over Z/NZ.
type GL2Mod struct {
	N int64
}

func (g GL2Mod) ring() Mat2Mod        { return Mat2Mod(g) }
func (g GL2Mod) Mul(a, b Mat2) Mat2   { return g.ring().Mul(a, b) }
func (g GL2Mod) Equal(a, b Mat2) bool { return g.ring().Equal(a, b) }
func (g GL2Mod) One() Mat2            { return g.ring().One() }

// Inv returns det⁻¹·adj(a). For a singular matrix it returns the zero
// matrix, which is never in the group when N > 1.
func (g GL2Mod) Inv(a Mat2) Mat2 {
	r := g.ring()
	a = r.norm(a)
	d, ok := modInverse(r.det(a), g.N)
	if !ok {
		return Mat2{}
	}
	z := r.z()
	adj := Mat2{a[3], z.negMod(a[1]), z.negMod(a[2]), a[0]}
	return r.Mul(Mat2{d, 0, 0, d}, adj)
}

// Elements returns the matrices with a unit determinant.
func (g GL2Mod) Elements() []Mat2 {
	var out []Mat2
	for _, m := range g.ring().Elements() {
		if gcd(g.ring().det(m), g.N) == 1 {
			out = append(out, m)
		}
	}
	return out
}

// Parse reads a matrix and rejects singular ones.
func (g GL2Mod) Parse(s string) (Mat2, error) {
	m, err := g.ring().Parse(s)
	if err != nil {
		return Mat2{}, err
	}
	if gcd(g.ring().det(m), g.N) != 1 {
		return Mat2{}, fmt.Errorf("%v is not invertible modulo %d", m, g.N)
	}
	return m, nil
}

// DetMod returns the determinant modulo N.
func (g GL2Mod) DetMod(a Mat2) int64 {
	return g.ring().det(a)
}
