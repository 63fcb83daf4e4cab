package main

import (
	"fmt"
	"log/slog"

	"github.com/alexshd/commute"
)

// runner runs the subcommands against one concrete structure.
type runner interface {
	Name() string
	Centralizer(pivots []string, opts commute.Options) (*centralizerReport, error)
	Power(a, b string, maxExponent int) (*powerReport, error)
	Laws(samples int) (*lawsReport, error)
}

// finite adapts a finite structure with parseable elements. group and ring
// are nil when the structure lacks the capability.
type finite[T any] struct {
	name     string
	monoid   commute.Monoid[T]
	group    commute.Group[T]
	ring     commute.Ring[T]
	elements func() []T
	parse    func(string) (T, error)
}

func (f *finite[T]) Name() string { return f.name }

func (f *finite[T]) parseAll(texts []string) ([]T, error) {
	out := make([]T, 0, len(texts))
	for _, s := range texts {
		x, err := f.parse(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		out = append(out, x)
	}
	return out, nil
}

func format[T any](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprint(x)
	}
	return out
}

// Centralizer enumerates the centralizer of the pivots and checks that it is
// closed under every operation the structure supports.
func (f *finite[T]) Centralizer(pivots []string, opts commute.Options) (*centralizerReport, error) {
	ps, err := f.parseAll(pivots)
	if err != nil {
		return nil, err
	}
	universe := f.elements()

	var (
		sub     *commute.Submonoid[T]
		kind    = "submonoid"
		closure []func(x, y commute.Member[T]) (commute.Member[T], error)
	)
	switch {
	case f.ring != nil:
		c := commute.NewSubring[T](f.ring, opts, ps...)
		sub, kind = c.Submonoid, "subring"
		closure = append(closure,
			c.Add,
			c.Sub,
			func(x, _ commute.Member[T]) (commute.Member[T], error) { return c.Neg(x) },
		)
	case f.group != nil:
		c := commute.NewSubgroup[T](f.group, opts, ps...)
		sub, kind = c.Submonoid, "subgroup"
		closure = append(closure,
			func(x, _ commute.Member[T]) (commute.Member[T], error) { return c.Inv(x) },
		)
	default:
		sub = commute.NewSubmonoid[T](f.monoid, opts, ps...)
	}
	closure = append(closure, sub.Mul)

	members := sub.Enumerate(universe)
	report := &centralizerReport{
		Structure: f.name,
		Kind:      kind,
		Pivots:    format(ps),
		Universe:  len(universe),
		Members:   format(members),
		Size:      len(members),
		Strict:    sub.IsStrict(universe),
		Closed:    true,
	}

	handles := make([]commute.Member[T], 0, len(members))
	for _, x := range members {
		m, ok := sub.Lookup(x)
		if !ok {
			return nil, fmt.Errorf("%s: enumerated %v but lookup rejects it", f.name, x)
		}
		handles = append(handles, m)
	}
	for _, x := range handles {
		for _, y := range handles {
			for _, op := range closure {
				z, err := op(x, y)
				if err != nil {
					return nil, err
				}
				if !sub.Contains(z.Value()) {
					report.Closed = false
					report.Counterexample = fmt.Sprintf("%v, %v -> %v", x.Value(), y.Value(), z.Value())
					return report, nil
				}
			}
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("centralizer checked",
		slog.String("structure", f.name),
		slog.Int("size", report.Size),
		slog.String("kind", kind),
	)
	return report, nil
}

// Power checks the product law for a commuting pair on exponents up to
// maxExponent, adding negative exponents for groups and the negation law for
// rings.
func (f *finite[T]) Power(a, b string, maxExponent int) (*powerReport, error) {
	pair, err := f.parseAll([]string{a, b})
	if err != nil {
		return nil, err
	}
	x, y := pair[0], pair[1]
	report := &powerReport{Structure: f.name, A: fmt.Sprint(x), B: fmt.Sprint(y)}

	h, ok := commute.Check[T](f.monoid, x, y)
	if !ok {
		return report, nil
	}
	report.Commute = true
	report.Witness = h.String()

	for n := 0; n <= maxExponent; n++ {
		id, err := commute.MulPow[T](f.monoid, h, uint(n))
		if err != nil {
			return nil, err
		}
		addCheck[T](report, f.monoid, id, commute.NonNegative(uint(n)))

		if f.group != nil && n > 0 {
			e := commute.IntExponent(-n)
			id, err := commute.MulZPow[T](f.group, h, e)
			if err != nil {
				return nil, err
			}
			addCheck[T](report, f.monoid, id, e)
		}
		if f.ring != nil {
			id, err := commute.NegPow[T](f.ring, x, uint(n))
			if err != nil {
				return nil, err
			}
			addCheck[T](report, f.monoid, id, commute.NonNegative(uint(n)))
		}
	}
	return report, nil
}

func addCheck[T any](r *powerReport, eq commute.Equaler[T], id commute.Identity[T], e commute.Exponent) {
	c := lawCheck{
		Law:      id.Name,
		Exponent: e.String(),
		LHS:      fmt.Sprint(id.LHS()),
		RHS:      fmt.Sprint(id.RHS()),
		Steps:    len(id.Steps),
		Holds:    id.Holds(eq),
	}
	if !c.Holds {
		r.Failures++
	}
	r.Checks = append(r.Checks, c)
}

// Laws samples the axioms of the structure and reports which held.
func (f *finite[T]) Laws(samples int) (*lawsReport, error) {
	elems := f.elements()
	if samples > 0 && len(elems) > samples {
		elems = elems[:samples]
	}
	v, err := commute.VerifyAndRegister[T](checker, f.name, f.monoid, elems)
	report := &lawsReport{
		Structure:  f.name,
		Kind:       string(commute.KindOf[T](f.monoid)),
		Samples:    len(elems),
		Properties: v.Properties,
	}
	for _, law := range v.Laws {
		report.Laws = append(report.Laws, string(law))
	}
	if err != nil {
		report.Violation = err.Error()
	}
	return report, nil
}
