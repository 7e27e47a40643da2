package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// clearEnv blanks every key so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{KeyGridSize, KeyTrials, KeySeed, KeyWorkers, KeyDebug} {
		t.Setenv(k, "")
	}
}

// TestLoad_Defaults: with nothing set and no .env file, defaults apply.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_Environment: explicit variables override defaults.
func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyGridSize, "50")
	t.Setenv(KeyTrials, "10")
	t.Setenv(KeySeed, "-3")
	t.Setenv(KeyWorkers, "4")
	t.Setenv(KeyDebug, "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{GridSize: 50, Trials: 10, Seed: -3, Workers: 4, Debug: true}, cfg)
}

// TestLoad_DotEnvFile: values come from the file when the variable is unset.
func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv.Load does not override variables that are already present,
	// even when empty; drop them for the keys the file provides.
	for _, k := range []string{KeyGridSize, KeyTrials} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		_ = os.Unsetenv(KeyGridSize)
		_ = os.Unsetenv(KeyTrials)
	})

	path := filepath.Join(t.TempDir(), "perc.env")
	require.NoError(t, os.WriteFile(path, []byte("PERC_GRID_SIZE=64\nPERC_TRIALS=7\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.GridSize)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, Default().Workers, cfg.Workers)
}

// TestLoad_AllErrorsReported: every malformed key appears in the error.
func TestLoad_AllErrorsReported(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyGridSize, "big")
	t.Setenv(KeyTrials, "many")
	t.Setenv(KeyDebug, "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), KeyGridSize)
	assert.Contains(t, err.Error(), KeyTrials)
	assert.Contains(t, err.Error(), KeyDebug)
}

// TestValidate_Ranges: non-positive counts are rejected together.
func TestValidate_Ranges(t *testing.T) {
	err := Config{GridSize: 0, Trials: -1, Workers: 0}.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)

	assert.NoError(t, Default().Validate())
}
