package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean computes the average of a slice. Empty input yields 0; callers that
// need to tell "no data" apart check the length first.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}

// Median returns the median value of the slice (allocates a copy). It is
// Percentile(x, 50): the rank is 0.5*(n-1) with linear interpolation.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Modes returns every value that occurs the maximum number of times, in order
// of first appearance. Empty input yields nil.
func Modes[T comparable](x []T) []T {
	if len(x) == 0 {
		return nil
	}
	counts := make(map[T]int, len(x))
	maxCount := 0
	for _, v := range x {
		counts[v]++
		if counts[v] > maxCount {
			maxCount = counts[v]
		}
	}
	var modes []T
	for _, v := range x {
		if counts[v] == maxCount {
			modes = append(modes, v)
			// emit each value once
			counts[v] = -1
		}
	}
	return modes
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// interpolating linearly between the two closest ranks. The zero-based rank
// is p/100*(n-1), so Percentile([1 2 3 4], 25) is 1.75. This differs from
// gonum's stat.Quantile, which uses a step (Empirical) or a different rank.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	min, max := MinMax(x)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}
