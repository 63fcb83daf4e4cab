package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type centralizerReport struct {
	Structure      string   `yaml:"structure"`
	Kind           string   `yaml:"kind"`
	Pivots         []string `yaml:"pivots"`
	Universe       int      `yaml:"universe"`
	Size           int      `yaml:"size"`
	Strict         bool     `yaml:"strict"`
	Closed         bool     `yaml:"closed"`
	Counterexample string   `yaml:"counterexample,omitempty"`
	Members        []string `yaml:"members"`
}

type lawCheck struct {
	Law      string `yaml:"law"`
	Exponent string `yaml:"exponent"`
	LHS      string `yaml:"lhs"`
	RHS      string `yaml:"rhs"`
	Steps    int    `yaml:"steps"`
	Holds    bool   `yaml:"holds"`
}

type powerReport struct {
	Structure string     `yaml:"structure"`
	A         string     `yaml:"a"`
	B         string     `yaml:"b"`
	Commute   bool       `yaml:"commute"`
	Witness   string     `yaml:"witness,omitempty"`
	Failures  int        `yaml:"failures"`
	Checks    []lawCheck `yaml:"checks,omitempty"`
}

type lawsReport struct {
	Structure  string            `yaml:"structure"`
	Kind       string            `yaml:"kind"`
	Samples    int               `yaml:"samples"`
	Laws       []string          `yaml:"laws"`
	Violation  string            `yaml:"violation,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

type listEntry struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	MaxOrder    int    `yaml:"max_order,omitempty"`
	Description string `yaml:"description"`
}

// textReport is implemented by reports with a human-readable form.
type textReport interface {
	writeText(w io.Writer)
}

func writeReport(w io.Writer, output string, r textReport) error {
	if output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	r.writeText(w)
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func (r *centralizerReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "C(%s) in %s\n", strings.Join(r.Pivots, ", "), r.Structure)
	fmt.Fprintf(w, "  %s of order %d (universe %d)\n", r.Kind, r.Size, r.Universe)
	fmt.Fprintf(w, "  strict: %v\n", r.Strict)
	fmt.Fprintf(w, "  %s closed", mark(r.Closed))
	if r.Counterexample != "" {
		fmt.Fprintf(w, " (counterexample %s)", r.Counterexample)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  members: %s\n", strings.Join(r.Members, " "))
}

func (r *powerReport) writeText(w io.Writer) {
	if !r.Commute {
		fmt.Fprintf(w, "%s and %s do not commute in %s\n", r.A, r.B, r.Structure)
		return
	}
	fmt.Fprintf(w, "%s in %s\n", r.Witness, r.Structure)
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  %s %-8s n=%-4s %s = %s\n", mark(c.Holds), c.Law, c.Exponent, c.LHS, c.RHS)
	}
	fmt.Fprintf(w, "  %d checks, %d failures\n", len(r.Checks), r.Failures)
}

func (r *lawsReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s (%s) on %d samples\n", r.Structure, r.Kind, r.Samples)
	for _, law := range r.Laws {
		fmt.Fprintf(w, "  ✓ %s\n", law)
	}
	if r.Violation != "" {
		fmt.Fprintf(w, "  ✗ %s\n", r.Violation)
	}
	if nc, ok := r.Properties["noncommuting"]; ok {
		fmt.Fprintf(w, "  noncommuting pair: %s\n", nc)
	}
}

type listReport []listEntry

func (r listReport) writeText(w io.Writer) {
	for _, e := range r {
		fmt.Fprintf(w, "%-10s %-6s %s\n", e.Name, e.Kind, e.Description)
	}
}
