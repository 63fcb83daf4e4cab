package commute

import (
	"log/slog"
	"runtime"
)

// Options controls how centralizers evaluate membership.
type Options struct {
	// Parallelism bounds the goroutines used by one membership scan.
	// Values ≤ 1 keep scans on the calling goroutine.
	Parallelism int

	// ParallelThreshold is the number of independent checks (pivots for a
	// single element, elements for Enumerate) below which a scan stays
	// sequential even when Parallelism > 1.
	ParallelThreshold int

	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns GOMAXPROCS-bounded parallel scans for large inputs.
func DefaultOptions() Options {
	return Options{
		Parallelism:       runtime.GOMAXPROCS(0),
		ParallelThreshold: 256,
		Logger:            slog.Default(),
	}
}

// SequentialOptions disables parallel scans.
func SequentialOptions() Options {
	opts := DefaultOptions()
	opts.Parallelism = 1
	return opts
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) parallel(n int) bool {
	return o.Parallelism > 1 && n >= o.ParallelThreshold && n > 1
}
