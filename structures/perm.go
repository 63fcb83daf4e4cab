package structures

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Perm is a permutation of {0, ..., n-1} in one-line notation: i ↦ p[i].
type Perm []int

func (p Perm) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Clone returns a copy that shares no memory with p.
func (p Perm) Clone() Perm { return slices.Clone(p) }

// Symmetric is the group of permutations of N points under composition.
type Symmetric struct {
	N int
}

// NewSymmetric returns S_n.
func NewSymmetric(n int) (Symmetric, error) {
	if n < 1 {
		return Symmetric{}, fmt.Errorf("symmetric degree must be positive, got %d", n)
	}
	return Symmetric{N: n}, nil
}

// Mul returns p∘q, applying q first.
func (s Symmetric) Mul(p, q Perm) Perm {
	out := make(Perm, s.N)
	for i := range out {
		out[i] = p[q[i]]
	}
	return out
}

func (s Symmetric) Equal(p, q Perm) bool { return slices.Equal(p, q) }

func (s Symmetric) One() Perm {
	out := make(Perm, s.N)
	for i := range out {
		out[i] = i
	}
	return out
}

func (s Symmetric) Inv(p Perm) Perm {
	out := make(Perm, s.N)
	for i, v := range p {
		out[v] = i
	}
	return out
}

// Transposition swaps i and j.
func (s Symmetric) Transposition(i, j int) Perm {
	p := s.One()
	p[i], p[j] = p[j], p[i]
	return p
}

// Cycle returns the cycle 0 → 1 → ... → N-1 → 0.
func (s Symmetric) Cycle() Perm {
	p := make(Perm, s.N)
	for i := range p {
		p[i] = (i + 1) % s.N
	}
	return p
}

// Elements returns all N! permutations in lexicographic order.
func (s Symmetric) Elements() []Perm {
	var out []Perm
	p := s.One()
	for {
		out = append(out, slices.Clone(p))
		if !nextPermutation(p) {
			return out
		}
	}
}

// Parse reads "0 2 1" or "[0 2 1]" and checks that it is a permutation.
func (s Symmetric) Parse(text string) (Perm, error) {
	text = strings.Trim(strings.TrimSpace(text), "[]")
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != s.N {
		return nil, fmt.Errorf("parse %q: want %d entries, got %d", text, s.N, len(fields))
	}
	p := make(Perm, s.N)
	seen := make([]bool, s.N)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		if v < 0 || v >= s.N || seen[v] {
			return nil, fmt.Errorf("parse %q: not a permutation of 0..%d", text, s.N-1)
		}
		seen[v] = true
		p[i] = v
	}
	return p, nil
}

// Sign returns +1 for even and -1 for odd permutations.
func Sign(p Perm) int64 {
	visited := make([]bool, len(p))
	sign := int64(1)
	for i := range p {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

func nextPermutation(p Perm) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}
