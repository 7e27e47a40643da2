package stats

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/percolate/percolation"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stats holds the per-trial thresholds and their summary statistics.
// It is immutable after New returns.
type Stats struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}

// RunTrial runs one experiment on a fresh n×n grid and returns how many
// sites were open when it first percolated. Sites are drawn uniformly from
// [1,n]²; a draw that hits an open site is simply redrawn.
// Returns ErrInvalidArgument if n is not a valid grid size or rng is nil.
// Complexity: O(n²·α(n²)) expected.
func RunTrial(n int, rng RandomSource) (int, error) {
	if !validGridSize(n) || rng == nil {
		return 0, fmt.Errorf("RunTrial(n=%d): %w", n, ErrInvalidArgument)
	}
	p, err := percolation.New(n)
	if err != nil {
		return 0, fmt.Errorf("RunTrial: %w", err)
	}

	for !p.Percolates() {
		row := rng.Intn(n) + 1
		col := rng.Intn(n) + 1
		open, err := p.IsOpen(row, col)
		if err != nil {
			return 0, fmt.Errorf("RunTrial: %w", err)
		}
		if open {
			continue
		}
		if err = p.Open(row, col); err != nil {
			return 0, fmt.Errorf("RunTrial: %w", err)
		}
	}

	return p.NumberOfOpenSites(), nil
}

// New performs trials independent experiments on n×n grids using rng and
// summarizes the thresholds.
// Returns ErrInvalidArgument if n ≤ 0, n² overflows int, trials ≤ 0, rng is
// nil or the configured worker count is below 1.
func New(n, trials int, rng RandomSource, opts ...Option) (*Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case !validGridSize(n):
		return nil, fmt.Errorf("New: grid size %d: %w", n, ErrInvalidArgument)
	case trials <= 0:
		return nil, fmt.Errorf("New: trials %d: %w", trials, ErrInvalidArgument)
	case rng == nil:
		return nil, fmt.Errorf("New: nil random source: %w", ErrInvalidArgument)
	case o.Workers < 1:
		return nil, fmt.Errorf("New: workers %d: %w", o.Workers, ErrInvalidArgument)
	}

	thresholds := make([]float64, trials)
	var err error
	if o.Workers == 1 {
		err = runSequential(n, rng, thresholds, o.Logger)
	} else {
		err = runParallel(n, trialSeeds(rng, trials), thresholds, o)
	}
	if err != nil {
		return nil, err
	}

	s := &Stats{n: n, thresholds: thresholds}
	s.mean, s.stddev = summarize(thresholds)
	o.Logger.Info("percolation threshold estimated",
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Int("workers", o.Workers),
		zap.Float64("mean", s.mean),
		zap.Float64("stddev", s.stddev),
	)

	return s, nil
}

// runSequential fills out in trial order, drawing every site from rng.
func runSequential(n int, rng RandomSource, out []float64, log *zap.Logger) error {
	for i := range out {
		opened, err := RunTrial(n, rng)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		out[i] = recordTrial(log, n, i, opened)
	}
	return nil
}

// runParallel hands trial indices to o.Workers goroutines. Every trial owns
// its grid and its rand stream; the only shared state is out, where each
// trial writes its own slot.
func runParallel(n int, seeds []int64, out []float64, o Options) error {
	jobs := make(chan int)
	errs := make([]error, len(out))

	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				opened, err := RunTrial(n, deriveRNG(seeds[i], uint64(i)))
				if err != nil {
					errs[i] = fmt.Errorf("trial %d: %w", i, err)
					continue
				}
				out[i] = recordTrial(o.Logger, n, i, opened)
			}
		}()
	}
	for i := range out {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return multierr.Combine(errs...)
}

// validGridSize reports whether an n×n grid plus its two virtual elements
// is addressable with int indices.
func validGridSize(n int) bool {
	return n >= 1 && n <= (math.MaxInt-2)/n
}

func recordTrial(log *zap.Logger, n, trial, opened int) float64 {
	threshold := float64(opened) / (float64(n) * float64(n))
	log.Debug("trial finished",
		zap.Int("trial", trial),
		zap.Int("opened", opened),
		zap.Float64("threshold", threshold),
	)
	return threshold
}

// summarize returns the sample mean and the Bessel-corrected standard
// deviation; the latter is NaN for a single sample.
func summarize(xs []float64) (mean, stddev float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, math.NaN()
	}

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)-1))
}

// GridSize returns N.
func (s *Stats) GridSize() int { return s.n }

// Trials returns T.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Thresholds returns a copy of the per-trial open fractions, in trial order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.mean }

// Stddev returns the sample standard deviation (divisor T-1); NaN when T == 1.
func (s *Stats) Stddev() float64 { return s.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.mean - s.halfWidth() }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.mean + s.halfWidth() }

// halfWidth is 1.96·stddev/√T, or 0 for a single trial.
func (s *Stats) halfWidth() float64 {
	t := len(s.thresholds)
	if t < 2 {
		return 0
	}
	return confidenceZ * s.stddev / math.Sqrt(float64(t))
}
