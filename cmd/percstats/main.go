// Command percstats estimates the site-percolation threshold of an N×N
// grid. All settings come from the environment (see internal/config); the
// result is emitted as a structured log entry.
package main

import (
	"log"
	"math/rand"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/stats"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("percstats: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("percstats: logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := stats.New(cfg.GridSize, cfg.Trials,
		rand.New(rand.NewSource(cfg.Seed)),
		stats.WithWorkers(cfg.Workers),
		stats.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	logger.Info("result",
		zap.Int("n", s.GridSize()),
		zap.Int("trials", s.Trials()),
		zap.Int64("seed", cfg.Seed),
		zap.Float64("mean", s.Mean()),
		zap.Float64("stddev", s.Stddev()),
		zap.Float64("confidence_lo", s.ConfidenceLo()),
		zap.Float64("confidence_hi", s.ConfidenceHi()),
	)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
