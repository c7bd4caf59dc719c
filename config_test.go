package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(NewViper())
	require.Nil(t, err)
	require.Equal(t, 10, config.Iterations)
	require.Equal(t, "build/Release/nonogram", config.Executable)
	require.Equal(t, "test_data", config.InputDir)
	require.Equal(t, StrategySelfReported, config.Strategy)
	require.True(t, config.Spread)
	require.Equal(t, 0, config.Warmup)
	require.Empty(t, config.Results)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("BENCHMARK_STRATEGY", "wall")
	t.Setenv("BENCHMARK_N_ITER", "25")
	t.Setenv("BENCHMARK_INPUT_DIR", "puzzles")
	t.Setenv("BENCHMARK_WARMUP", "2")

	config, err := LoadConfig(NewViper())
	require.Nil(t, err)
	require.Equal(t, StrategyWallClock, config.Strategy)
	require.False(t, config.Spread)
	require.Equal(t, 25, config.Iterations)
	require.Equal(t, "puzzles", config.InputDir)
	require.Equal(t, 2, config.Warmup)
}

func TestLoadConfigSpreadOverride(t *testing.T) {
	t.Setenv("BENCHMARK_STRATEGY", "wall")
	t.Setenv("BENCHMARK_SPREAD", "true")

	config, err := LoadConfig(NewViper())
	require.Nil(t, err)
	require.True(t, config.Spread)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.Nil(t, os.WriteFile(path, []byte("executable: /opt/nonogram\nn_iter: 3\n"), 0o644))
	t.Setenv("BENCHMARK_CONFIG", path)

	config, err := LoadConfig(NewViper())
	require.Nil(t, err)
	require.Equal(t, "/opt/nonogram", config.Executable)
	require.Equal(t, 3, config.Iterations)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("BENCHMARK_N_ITER", "0")
	_, err := LoadConfig(NewViper())
	require.ErrorIs(t, err, ErrInvalidIterations)

	t.Setenv("BENCHMARK_N_ITER", "10")
	t.Setenv("BENCHMARK_STRATEGY", "cycles")
	_, err = LoadConfig(NewViper())
	require.NotNil(t, err)
}
