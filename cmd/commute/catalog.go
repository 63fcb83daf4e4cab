package main

import (
	"fmt"
	"sort"

	"github.com/alexshd/commute/structures"
)

// entry describes one structure family selectable with --structure.
type entry struct {
	Kind        string
	Description string
	// MaxOrder bounds the parameter for commands that enumerate the
	// element set. Commands that only parse elements ignore it.
	MaxOrder int
	build    func(order int) (runner, error)
}

var catalog = map[string]entry{
	"dihedral": {
		Kind:        "group",
		Description: "dihedral group D_n of the regular n-gon (elements r<k>, s<k>)",
		MaxOrder:    enumerableOrder,
		build: func(order int) (runner, error) {
			d, err := structures.NewDihedral(order)
			if err != nil {
				return nil, err
			}
			return &finite[structures.Sym]{
				name: fmt.Sprintf("D%d", order), monoid: d, group: d,
				elements: d.Elements, parse: d.Parse,
			}, nil
		},
	},
	"symmetric": {
		Kind:        "group",
		Description: "symmetric group S_n (elements as images, e.g. \"1 0 2\")",
		MaxOrder:    6,
		build: func(order int) (runner, error) {
			s, err := structures.NewSymmetric(order)
			if err != nil {
				return nil, err
			}
			return &finite[structures.Perm]{
				name: fmt.Sprintf("S%d", order), monoid: s, group: s,
				elements: s.Elements, parse: s.Parse,
			}, nil
		},
	},
	"zmod": {
		Kind:        "ring",
		Description: "integers modulo n",
		MaxOrder:    enumerableOrder,
		build: func(order int) (runner, error) {
			z, err := structures.NewZMod(int64(order))
			if err != nil {
				return nil, err
			}
			return &finite[int64]{
				name: fmt.Sprintf("Z/%d", order), monoid: z, ring: z,
				elements: z.Elements, parse: z.Parse,
			}, nil
		},
	},
	"zadd": {
		Kind:        "group",
		Description: "cyclic group Z/n under addition, written multiplicatively",
		MaxOrder:    enumerableOrder,
		build: func(order int) (runner, error) {
			z := structures.ZAdd{N: int64(order)}
			return &finite[int64]{
				name: fmt.Sprintf("Z/%d+", order), monoid: z, group: z,
				elements: z.Elements, parse: z.Parse,
			}, nil
		},
	},
	"units": {
		Kind:        "group",
		Description: "multiplicative group of units modulo n",
		MaxOrder:    enumerableOrder,
		build: func(order int) (runner, error) {
			if order < 2 {
				return nil, fmt.Errorf("units modulus must be at least 2, got %d", order)
			}
			u := structures.Units{N: int64(order)}
			return &finite[int64]{
				name: fmt.Sprintf("(Z/%d)*", order), monoid: u, group: u,
				elements: u.Elements, parse: u.Parse,
			}, nil
		},
	},
	"mat2": {
		Kind:        "ring",
		Description: "2x2 matrices modulo n (elements \"a,b;c,d\")",
		MaxOrder:    7,
		build: func(order int) (runner, error) {
			if order < 2 {
				return nil, fmt.Errorf("matrix modulus must be at least 2, got %d", order)
			}
			r := structures.Mat2Mod{N: int64(order)}
			return &finite[structures.Mat2]{
				name: fmt.Sprintf("M2(Z/%d)", order), monoid: r, ring: r,
				elements: r.Elements, parse: r.Parse,
			}, nil
		},
	},
	"gl2": {
		Kind:        "group",
		Description: "invertible 2x2 matrices modulo n",
		MaxOrder:    7,
		build: func(order int) (runner, error) {
			if order < 2 {
				return nil, fmt.Errorf("matrix modulus must be at least 2, got %d", order)
			}
			g := structures.GL2Mod{N: int64(order)}
			return &finite[structures.Mat2]{
				name: fmt.Sprintf("GL2(Z/%d)", order), monoid: g, group: g,
				elements: g.Elements, parse: g.Parse,
			}, nil
		},
	},
}

// enumerableOrder bounds the cyclic and dihedral families, whose
// centralizer closure check is quadratic in the member count.
const enumerableOrder = 4096

// catalogNames returns the structure names in sorted order.
func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// openStructure resolves a catalog entry for the given parameter. The
// enumerable limit applies only when enumerate is set.
func openStructure(name string, order int, enumerate bool) (runner, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown structure %q (try the list command)", name)
	}
	if order < 1 {
		return nil, fmt.Errorf("order must be positive, got %d", order)
	}
	if enumerate && e.MaxOrder > 0 && order > e.MaxOrder {
		return nil, fmt.Errorf("%s: order %d exceeds the enumerable limit %d", name, order, e.MaxOrder)
	}
	return e.build(order)
}
