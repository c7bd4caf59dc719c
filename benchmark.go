package main

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

var ErrInvalidIterations = errors.New("iteration count must be positive")

type Benchmark struct {
	Executor    Executor
	Strategy    Strategy
	Iterations  int
	Warmup      int
	ClearCaches bool
}

func clearCaches(ctx context.Context) error {
	switch runtime.GOOS {
	case "linux":
		if err := exec.CommandContext(ctx, "sync").Run(); err != nil {
			return err
		}
		if err := exec.CommandContext(ctx, "sh", "-c", "echo 3 | sudo tee /proc/sys/vm/drop_caches").Run(); err != nil {
			return err
		}
		return nil
	case "darwin":
		if err := exec.CommandContext(ctx, "sync").Run(); err != nil {
			return err
		}
		if err := exec.CommandContext(ctx, "purge").Run(); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("unable to clear caches for platform '%v'", runtime.GOOS)
}

func (b *Benchmark) clearCachesIfNeeded(ctx context.Context) error {
	if !b.ClearCaches {
		return nil
	}
	Logger.Debug("clear caches")
	return clearCaches(ctx)
}

// WarmupInput runs unmeasured trials; a failure aborts just like a measured one.
func (b *Benchmark) WarmupInput(ctx context.Context, input Input) error {
	for i := 0; i < b.Warmup; i++ {
		Logger.Debugf("running warmup #%v/%v for %v", i+1, b.Warmup, input.Name)
		if _, err := Trial(ctx, b.Executor, b.Strategy, input.Path); err != nil {
			return fmt.Errorf("warmup #%v failed: %w", i+1, err)
		}
	}
	return nil
}

// Sample runs exactly Iterations sequential trials and returns the latencies
// in completion order. No partial sample is returned on failure.
func (b *Benchmark) Sample(ctx context.Context, input Input) ([]int64, error) {
	if b.Iterations < 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIterations, b.Iterations)
	}
	dist := make([]int64, 0, b.Iterations)
	for i := 0; i < b.Iterations; i++ {
		if err := b.clearCachesIfNeeded(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear caches: %w", err)
		}

		Logger.Debugf("running trial #%v/%v for %v", i+1, b.Iterations, input.Name)
		sample, err := Trial(ctx, b.Executor, b.Strategy, input.Path)
		if err != nil {
			return nil, fmt.Errorf("trial #%v failed: %w", i+1, err)
		}
		dist = append(dist, sample)
	}
	return dist, nil
}
