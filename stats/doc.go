// Package stats estimates the site-percolation threshold by Monte Carlo
// simulation over percolation.Percolation grids.
//
// Each trial builds a fresh N×N grid, opens uniformly random blocked sites
// (redrawing when the drawn site is already open) until the grid
// percolates, and records the fraction of sites opened. Over T trials the
// package reports the sample mean, the sample standard deviation (divisor
// T-1) and a 95% confidence interval mean ± 1.96·stddev/√T.
//
// Determinism:
//
//   - All randomness comes from the caller's RandomSource.
//   - With one worker (the default) trials run in order and draw straight
//     from that source.
//   - With k > 1 workers one seed per trial is drawn from the source before
//     any trial starts; each trial then owns a derived math/rand stream. The
//     results depend on the seed only, not on k or scheduling.
//
// Single trial:
//
//   - Stddev returns NaN (the sample variance has divisor zero).
//   - ConfidenceLo and ConfidenceHi both return Mean.
//
// Errors:
//
//   - ErrInvalidArgument: N ≤ 0 or N² overflowing int, T ≤ 0, nil
//     RandomSource or workers < 1.
//
// Logging goes through an optional *zap.Logger (WithLogger); the default
// discards everything.
package stats
