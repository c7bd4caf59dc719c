package main

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

type Summary struct {
	Median int64
	Std    int64
}

func mustNonEmpty(dist []int64) {
	if len(dist) == 0 {
		panic("statistics of an empty distribution")
	}
}

func floats(dist []int64) []float64 {
	xs := make([]float64, len(dist))
	for i, v := range dist {
		xs[i] = float64(v)
	}
	return xs
}

func Mean(dist []int64) float64 {
	mustNonEmpty(dist)
	return stats.Mean(floats(dist))
}

// Variance is the population variance (divisor N).
func Variance(dist []int64) float64 {
	mean := Mean(dist)
	total := 0.0
	for _, v := range dist {
		d := float64(v) - mean
		total += d * d
	}
	return total / float64(len(dist))
}

func StdDev(dist []int64) float64 {
	return math.Sqrt(Variance(dist))
}

// Median returns the element at zero-based index (n+1)/2 of the sorted
// distribution. For even n this is one past the lower median and for odd n
// one past the middle; reported q50 numbers depend on exactly this rule.
// A single-element distribution returns that element.
func Median(dist []int64) int64 {
	mustNonEmpty(dist)
	sorted := slices.Clone(dist)
	slices.Sort(sorted)
	return sorted[min((len(sorted)+1)/2, len(sorted)-1)]
}

// Summarize rounds the standard deviation half to even.
func Summarize(dist []int64) Summary {
	return Summary{
		Median: Median(dist),
		Std:    int64(math.RoundToEven(StdDev(dist))),
	}
}
