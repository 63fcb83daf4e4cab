// Package main provides the commute CLI for exploring commutation,
// centralizers and power laws in small finite structures.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexshd/commute"
	"github.com/spf13/cobra"
)

// checker records the structures whose laws passed in this process.
var checker = commute.NewLawChecker()

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the resolved configuration into subcommands.
type app struct {
	configPath string
	noColor    bool
	cfg        *Config
	logger     *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "commute",
		Short: "Explore commutation in finite algebraic structures",
		Long: `Explore commutation in finite algebraic structures.

Examples:
  commute list
  commute centralizer --structure dihedral --order 4 --pivot r1
  commute centralizer --structure mat2 --order 2 --pivot "1,1;0,1"
  commute power --structure units --order 11 --a 2 --b 5
  commute laws --structure symmetric --order 3 --output yaml
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file")
	f.StringVar(&a.cfg.Structure, "structure", a.cfg.Structure, "structure family (see list)")
	f.IntVar(&a.cfg.Order, "order", a.cfg.Order, "structure parameter (polygon sides, degree or modulus)")
	f.IntVar(&a.cfg.Parallelism, "parallelism", a.cfg.Parallelism, "goroutines per membership scan")
	f.StringVar(&a.cfg.Output, "output", a.cfg.Output, "output format: text or yaml")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	f.BoolVar(&a.noColor, "no-color", false, "disable coloured log output")

	cmd.AddCommand(
		centralizerCmd(a),
		powerCmd(a),
		lawsCmd(a),
		listCmd(a),
	)
	return cmd
}

// resolve loads the config file, if any, and reapplies explicitly set flags
// on top of it.
func (a *app) resolve(cmd *cobra.Command) error {
	if a.configPath != "" {
		fileCfg, err := LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		override := func(name string, apply func()) {
			if flags.Changed(name) {
				apply()
			}
		}
		flagCfg := *a.cfg
		override("structure", func() { fileCfg.Structure = flagCfg.Structure })
		override("order", func() { fileCfg.Order = flagCfg.Order })
		override("parallelism", func() { fileCfg.Parallelism = flagCfg.Parallelism })
		override("output", func() { fileCfg.Output = flagCfg.Output })
		override("log-level", func() { fileCfg.LogLevel = flagCfg.LogLevel })
		override("pivot", func() { fileCfg.Pivots = flagCfg.Pivots })
		override("max-exponent", func() { fileCfg.MaxExponent = flagCfg.MaxExponent })
		override("samples", func() { fileCfg.Samples = flagCfg.Samples })
		*a.cfg = *fileCfg
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := parseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level, a.noColor)
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) options() commute.Options {
	opts := commute.DefaultOptions()
	opts.Parallelism = a.cfg.Parallelism
	opts.Logger = a.logger
	return opts
}

func (a *app) open(enumerate bool) (runner, error) {
	r, err := openStructure(a.cfg.Structure, a.cfg.Order, enumerate)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("structure opened",
		slog.String("structure", r.Name()),
		slog.Bool("enumerate", enumerate),
	)
	return r, nil
}

func centralizerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centralizer",
		Short: "Enumerate the centralizer of a set of pivots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.open(true)
			if err != nil {
				return err
			}
			report, err := r.Centralizer(a.cfg.Pivots, a.options())
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), a.cfg.Output, report); err != nil {
				return err
			}
			if !report.Closed {
				return fmt.Errorf("centralizer of %v is not closed", report.Pivots)
			}
			return nil
		},
	}
	// StringArray keeps commas inside matrix literals.
	cmd.Flags().StringArrayVar(&a.cfg.Pivots, "pivot", nil, "pivot element (repeatable)")
	return cmd
}

func powerCmd(a *app) *cobra.Command {
	var x, y string
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Check the power and product laws for a commuting pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.open(false)
			if err != nil {
				return err
			}
			report, err := r.Power(x, y, a.cfg.MaxExponent)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), a.cfg.Output, report); err != nil {
				return err
			}
			if report.Failures > 0 {
				return fmt.Errorf("%d of %d power-law checks failed", report.Failures, len(report.Checks))
			}
			if !report.Commute {
				a.logger.Warn("pair does not commute", slog.String("a", report.A), slog.String("b", report.B))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&x, "a", "", "first element")
	cmd.Flags().StringVar(&y, "b", "", "second element")
	cmd.Flags().IntVar(&a.cfg.MaxExponent, "max-exponent", a.cfg.MaxExponent, "largest exponent checked")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func lawsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Sample the axioms of a structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.open(true)
			if err != nil {
				return err
			}
			report, err := r.Laws(a.cfg.Samples)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), a.cfg.Output, report); err != nil {
				return err
			}
			if report.Violation != "" {
				return fmt.Errorf("%s: %s", report.Structure, report.Violation)
			}
			a.logger.Info("laws verified",
				slog.String("structure", report.Structure),
				slog.Int("laws", len(report.Laws)),
				slog.Int("registered", len(checker.Names())),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.cfg.Samples, "samples", a.cfg.Samples, "number of elements sampled (0 = all)")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available structures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out listReport
			for _, name := range catalogNames() {
				e := catalog[name]
				out = append(out, listEntry{
					Name:        name,
					Kind:        e.Kind,
					MaxOrder:    e.MaxOrder,
					Description: e.Description,
				})
			}
			return writeReport(cmd.OutOrStdout(), a.cfg.Output, out)
		},
	}
}
