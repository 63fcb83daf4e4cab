package commute

import (
	"fmt"
	"testing"

	"github.com/alexshd/commute/structures"
)

// BenchmarkEnumerate measures centralizer enumeration over M2(Z/5) at
// increasing parallelism levels.
func BenchmarkEnumerate(b *testing.B) {
	r := structures.Mat2Mod{N: 5}
	universe := r.Elements()
	pivots := []structures.Mat2{{1, 1, 0, 1}, {2, 0, 0, 2}}

	for _, n := range []int{1, 2, 4, 8} {
		opts := Options{Parallelism: n, ParallelThreshold: 64}
		c := NewSubring[structures.Mat2](r, opts, pivots...)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.Enumerate(universe)
			}
		})
	}
}

// BenchmarkPowRight measures witness construction for large exponents.
func BenchmarkPowRight(b *testing.B) {
	u := structures.Units{N: 1_000_003}
	h, _ := Check[int64](u, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PowRight[int64](u, h, 1<<40); err != nil {
			b.Fatal(err)
		}
	}
}
