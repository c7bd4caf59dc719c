package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedianSingle(t *testing.T) {
	require.Equal(t, int64(7), Median([]int64{7}))
}

func TestMedianIndexRule(t *testing.T) {
	even := []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	require.Equal(t, int64(6), Median(even))

	odd := []int64{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	require.Equal(t, int64(7), Median(odd))

	require.Equal(t, int64(2), Median([]int64{2, 1}))
	require.Equal(t, int64(3), Median([]int64{3, 1, 2}))
}

func TestMedianKeepsInputOrder(t *testing.T) {
	dist := []int64{3, 1, 2}
	Median(dist)
	require.Equal(t, []int64{3, 1, 2}, dist)
}

func TestMoments(t *testing.T) {
	dist := []int64{2, 4, 4, 4, 5, 5, 7, 9}
	require.InDelta(t, 5.0, Mean(dist), 1e-9)
	require.InDelta(t, 4.0, Variance(dist), 1e-9)
	require.InDelta(t, 2.0, StdDev(dist), 1e-9)
}

func TestStdDevConstant(t *testing.T) {
	require.Equal(t, 0.0, StdDev([]int64{42, 42, 42, 42, 42}))
}

func TestMomentsOrderIndependent(t *testing.T) {
	dist := []int64{120, 5, 77, 1_000_003, 42, 42, 9, 31_337}
	mean, variance, std := Mean(dist), Variance(dist), StdDev(dist)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]int64(nil), dist...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		require.InDelta(t, mean, Mean(shuffled), 1e-6)
		require.InDelta(t, variance, Variance(shuffled), 1e-3)
		require.InDelta(t, std, StdDev(shuffled), 1e-6)
	}
}

func TestEmptyDistributionPanics(t *testing.T) {
	require.Panics(t, func() { Mean(nil) })
	require.Panics(t, func() { Median([]int64{}) })
}

func TestSummarize(t *testing.T) {
	require.Equal(t, Summary{Median: 42, Std: 0}, Summarize([]int64{42, 42, 42, 42, 42}))
	// std 0.5 and 1.5 round half to even
	require.Equal(t, int64(0), Summarize([]int64{0, 1}).Std)
	require.Equal(t, int64(2), Summarize([]int64{0, 3}).Std)
}
