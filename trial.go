package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Strategy int

const (
	// StrategySelfReported trusts the solver's own "solve_puzzle took N ns"
	// line, which excludes process startup.
	StrategySelfReported Strategy = iota
	// StrategyWallClock times the whole process from the outside.
	StrategyWallClock
)

const selfReportedPrefix = "solve_puzzle took "

var ErrMalformedOutput = errors.New("malformed solver output")

func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "self", "self-reported":
		return StrategySelfReported, nil
	case "wall", "wall-clock":
		return StrategyWallClock, nil
	}
	return 0, fmt.Errorf("unknown timing strategy '%v'", value)
}

func (s Strategy) String() string {
	switch s {
	case StrategySelfReported:
		return "self"
	case StrategyWallClock:
		return "wall"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) Args(input string) []string {
	if s == StrategySelfReported {
		return []string{input, "-q", "-b"}
	}
	return []string{input, "-q"}
}

func ParseSelfReported(stdout []byte) (int64, error) {
	line := strings.TrimSpace(string(stdout))
	if line == "" {
		return 0, fmt.Errorf("%w: empty stdout", ErrMalformedOutput)
	}
	rest, ok := strings.CutPrefix(line, selfReportedPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedOutput, line)
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 || fields[1] != "ns" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedOutput, line)
	}
	value, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedOutput, line, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative duration %v", ErrMalformedOutput, value)
	}
	return value, nil
}

// Trial runs the solver once on input and returns one latency sample in
// nanoseconds.
func Trial(ctx context.Context, executor Executor, strategy Strategy, input string) (int64, error) {
	args := strategy.Args(input)
	switch strategy {
	case StrategySelfReported:
		output, err := executor.Run(ctx, args)
		if err != nil {
			return 0, err
		}
		return ParseSelfReported(output.Stdout)
	case StrategyWallClock:
		start := time.Now()
		_, err := executor.Run(ctx, args)
		elapsed := time.Since(start)
		if err != nil {
			return 0, err
		}
		return elapsed.Nanoseconds(), nil
	}
	return 0, fmt.Errorf("unknown timing strategy %v", strategy)
}
