package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSolver answers every run with the script returned by respond and
// remembers the arguments it was called with.
type fakeSolver struct {
	calls   [][]string
	respond func(call int, args []string) (Output, error)
}

func (f *fakeSolver) Run(ctx context.Context, args []string) (Output, error) {
	f.calls = append(f.calls, args)
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	return f.respond(len(f.calls)-1, args)
}

func (f *fakeSolver) inputs() []string {
	seen := make([]string, 0, len(f.calls))
	for _, args := range f.calls {
		seen = append(seen, args[0])
	}
	return seen
}

func reporting(ns int64) func(int, []string) (Output, error) {
	return func(int, []string) (Output, error) {
		return Output{Stdout: []byte(fmt.Sprintf("solve_puzzle took %v ns\n", ns))}, nil
	}
}

func sleeping(d time.Duration) func(int, []string) (Output, error) {
	return func(int, []string) (Output, error) {
		time.Sleep(d)
		return Output{}, nil
	}
}

func writeInputs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte("1 1\n1\n1\n"), 0o644))
	}
	return dir
}

// writeSolver creates an executable shell script standing in for the solver.
func writeSolver(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script solver requires a unix shell")
	}
	path := filepath.Join(t.TempDir(), "solver")
	require.Nil(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}
