// Package config loads the simulation driver's settings from the
// environment, reading an optional .env file first.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Environment keys.
const (
	KeyGridSize = "PERC_GRID_SIZE"
	KeyTrials   = "PERC_TRIALS"
	KeySeed     = "PERC_SEED"
	KeyWorkers  = "PERC_WORKERS"
	KeyDebug    = "PERC_DEBUG"
)

// Config holds the driver configuration.
type Config struct {
	GridSize int
	Trials   int
	Seed     int64
	Workers  int
	Debug    bool
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		GridSize: 200,
		Trials:   100,
		Seed:     1,
		Workers:  1,
		Debug:    false,
	}
}

// Load reads the named .env files (".env" when none are given) into the
// process environment, ignoring missing files, then builds a Config from
// the environment. Every malformed or out-of-range value is reported in
// the returned error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	def := Default()
	var cfg Config
	var err, e error

	cfg.GridSize, e = getInt(KeyGridSize, def.GridSize)
	err = multierr.Append(err, e)
	cfg.Trials, e = getInt(KeyTrials, def.Trials)
	err = multierr.Append(err, e)
	cfg.Workers, e = getInt(KeyWorkers, def.Workers)
	err = multierr.Append(err, e)
	cfg.Seed, e = getInt64(KeySeed, def.Seed)
	err = multierr.Append(err, e)
	cfg.Debug, e = getBool(KeyDebug, def.Debug)
	err = multierr.Append(err, e)
	if err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every field outside its allowed range.
func (c Config) Validate() error {
	var err error
	if c.GridSize < 1 {
		err = multierr.Append(err, fmt.Errorf("config: %s must be > 0, got %d", KeyGridSize, c.GridSize))
	}
	if c.Trials < 1 {
		err = multierr.Append(err, fmt.Errorf("config: %s must be > 0, got %d", KeyTrials, c.Trials))
	}
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("config: %s must be > 0, got %d", KeyWorkers, c.Workers))
	}
	return err
}

// getEnv gets an environment variable or returns the default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, def int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getInt64(key string, def int64) (int64, error) {
	v, err := strconv.ParseInt(getEnv(key, strconv.FormatInt(def, 10)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, def bool) (bool, error) {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}
