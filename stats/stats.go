package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrDegenerate is returned when a normalization would divide by zero,
// i.e. the input array has zero variance or zero range.
var ErrDegenerate = errors.New("degenerate field: zero variance or range")

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Std returns the population standard deviation (divide by n).
func Std(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	var sumSq float64
	for _, x := range xs {
		diff := x - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}

func Min(xs []float64) float64 {
	res := xs[0]
	for _, x := range xs[1:] {
		if x < res {
			res = x
		}
	}
	return res
}

func Max(xs []float64) float64 {
	res := xs[0]
	for _, x := range xs[1:] {
		if x > res {
			res = x
		}
	}
	return res
}

// Standardize returns (x - mean) / std element-wise, computed over the
// whole array. Constant arrays yield ErrDegenerate.
func Standardize(xs []float64) ([]float64, error) {
	mean := Mean(xs)
	std := Std(xs)
	if std == 0 {
		return nil, ErrDegenerate
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = (x - mean) / std
	}
	return res, nil
}

// MinMaxNormalize returns (x - min) / (max - min) element-wise, computed
// over the whole array. Constant arrays yield ErrDegenerate.
func MinMaxNormalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrDegenerate
	}
	lo := Min(xs)
	hi := Max(xs)
	if hi == lo {
		return nil, ErrDegenerate
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = (x - lo) / (hi - lo)
	}
	return res, nil
}

// UniqueSorted returns the distinct values of xs in ascending order.
// The input is not modified.
func UniqueSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	res := sorted[:1]
	for _, x := range sorted[1:] {
		if x != res[len(res)-1] {
			res = append(res, x)
		}
	}
	return res
}
