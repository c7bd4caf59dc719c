package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Inputs with this prefix are fixtures or notes living next to the puzzles.
const skipPrefix = "_"

var ErrNotRegularFile = errors.New("not a regular file")

type System struct {
	benchmark Benchmark
	inputDir  string
	spread    bool
	recorder  Recorder
	report    string
	meta      map[string]any
	out       io.Writer
}

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

func HostStat() SysInfo {
	info := SysInfo{Arch: runtime.GOARCH}
	if hostStat, err := host.Info(); err == nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		totalFreq := 0.0
		for _, cpu := range cpuStat {
			totalFreq += cpu.Mhz
		}
		info.CPUCount = len(cpuStat)
		info.CPUFreq = totalFreq / float64(len(cpuStat)) * 1000
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = float64(vmStat.Total) / 1024 / 1024 / 1024
	}
	return info
}

// DiscoverInputs lists dir in filename order. Every entry must be a regular
// file, including the skipped ones.
func DiscoverInputs(dir string) ([]Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list inputs: %w", err)
	}
	inputs := make([]Input, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat input %v: %w", path, err)
		}
		if !stat.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %v", ErrNotRegularFile, path)
		}
		if strings.HasPrefix(entry.Name(), skipPrefix) {
			Logger.Infof("skip input %v", entry.Name())
			continue
		}
		inputs = append(inputs, Input{Name: entry.Name(), Path: path})
	}
	return inputs, nil
}

func (s *System) parameters(info SysInfo) map[string]any {
	meta := map[string]any{
		"strategy":   s.benchmark.Strategy.String(),
		"iterations": s.benchmark.Iterations,
		"warmup":     s.benchmark.Warmup,
		"inputs":     s.inputDir,
		"arch":       info.Arch,
		"hostname":   info.Hostname,
		"platform":   info.Platform,
		"ram":        info.RAM,
		"cpu":        info.CPUCount,
		"freq":       info.CPUFreq,
	}
	for key, value := range s.meta {
		meta[key] = value
	}
	return meta
}

func (s *System) RunInput(ctx context.Context, input Input) (Result, error) {
	if err := s.benchmark.WarmupInput(ctx, input); err != nil {
		return Result{}, err
	}
	samples, err := s.benchmark.Sample(ctx, input)
	if err != nil {
		return Result{}, err
	}
	return Result{Input: input, Samples: samples, Summary: Summarize(samples)}, nil
}

// Run benchmarks every input in order and prints a summary line as soon as
// each input finishes. The first error stops the run.
func (s *System) Run(ctx context.Context) ([]Result, error) {
	Logger.Infof("start benchmark")

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	inputs, err := DiscoverInputs(s.inputDir)
	if err != nil {
		return nil, err
	}
	Logger.Infof("discovered %v inputs in %v", len(inputs), s.inputDir)

	meta := s.parameters(info)
	if s.recorder != nil {
		if err := s.recorder.InitResultsDb(ctx, meta); err != nil {
			return nil, fmt.Errorf("failed to initialize results db: %w", err)
		}
	}

	results := make([]Result, 0, len(inputs))
	for _, input := range inputs {
		Logger.Infof("running input %v with %v strategy", input.Name, s.benchmark.Strategy)
		result, err := s.RunInput(ctx, input)
		if err != nil {
			return results, fmt.Errorf("failed to benchmark %v: %w", input.Name, err)
		}
		if _, err := fmt.Fprintln(s.out, FormatSummary(input.Name, result.Summary, s.spread)); err != nil {
			return results, err
		}
		if s.recorder != nil {
			if err := s.recorder.UpdateResultsDb(ctx, result); err != nil {
				return results, fmt.Errorf("failed to record results for %v: %w", input.Name, err)
			}
		}
		results = append(results, result)
	}

	if s.report != "" {
		if err := WriteReport(s.report, NewReport(meta, results)); err != nil {
			return results, err
		}
		Logger.Infof("wrote report %v", s.report)
	}
	return results, nil
}
