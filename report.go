package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// FormatSummary renders one output line. The spread variant adds the
// standard deviation after the q50 value.
func FormatSummary(name string, summary Summary, spread bool) string {
	if !spread {
		return fmt.Sprintf("%v: q50=%vns", name, humanize.Comma(summary.Median))
	}
	return fmt.Sprintf("%v: q50=%vns std=%vns", name, humanize.Comma(summary.Median), humanize.Comma(summary.Std))
}

type Report struct {
	Parameters map[string]any `yaml:"parameters"`
	Results    []ReportEntry  `yaml:"results"`
}

type ReportEntry struct {
	Name    string  `yaml:"name"`
	Median  int64   `yaml:"q50_ns"`
	Std     int64   `yaml:"std_ns"`
	Samples []int64 `yaml:"samples,flow"`
}

func NewReport(meta map[string]any, results []Result) Report {
	entries := make([]ReportEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, ReportEntry{
			Name:    result.Input.Name,
			Median:  result.Summary.Median,
			Std:     result.Summary.Std,
			Samples: result.Samples,
		})
	}
	return Report{Parameters: meta, Results: entries}
}

func WriteReport(path string, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %v: %w", path, err)
	}
	return nil
}
