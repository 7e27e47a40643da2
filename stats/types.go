package stats

import "go.uber.org/zap"

// confidenceZ is the two-sided 95% normal quantile.
const confidenceZ = 1.96

// RandomSource supplies the pseudo-random draws for site selection.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Int63 returns a uniform non-negative int64; used to seed per-trial
	// streams when trials run in parallel.
	Int63() int64
}

// Options configures a simulation run. Use DefaultOptions and Option setters.
//
// Fields:
//
//	Workers int         — number of goroutines running trials (≥ 1).
//	Logger  *zap.Logger — receives per-trial Debug and summary Info entries.
type Options struct {
	Workers int
	Logger  *zap.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithWorkers sets the number of goroutines running trials.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// DefaultOptions returns sequential execution with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}
