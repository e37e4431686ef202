package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeHasZeroMeanUnitStd(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3, 4},
		{-10, 0.5, 3, 3, 99},
		{0.001, 0.002, 0.004},
	}

	for _, xs := range cases {
		res, err := Standardize(xs)

		assert := assert.New(t)
		assert.NoError(err)
		assert.Len(res, len(xs))
		assert.InDelta(0, Mean(res), 1e-9)
		assert.InDelta(1, Std(res), 1e-9)
	}
}

func TestStandardizeConstantArrayFails(t *testing.T) {
	_, err := Standardize([]float64{5, 5, 5})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestMinMaxNormalizeSpansUnitInterval(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3, 4},
		{-10, 0.5, 3, 99},
		{7, 2},
	}

	for _, xs := range cases {
		res, err := MinMaxNormalize(xs)

		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(0.0, Min(res))
		assert.Equal(1.0, Max(res))
	}
}

func TestMinMaxNormalizeConstantArrayFails(t *testing.T) {
	_, err := MinMaxNormalize([]float64{2, 2})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestMeanAndStd(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2.5, Mean([]float64{1, 2, 3, 4}))
	// population std, divide by n
	assert.InDelta(2.0, Std([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestUniqueSorted(t *testing.T) {
	xs := []float64{3, 1, 2, 1, 3, 3}
	res := UniqueSorted(xs)

	assert := assert.New(t)
	assert.Equal([]float64{1, 2, 3}, res)
	// input untouched
	assert.Equal([]float64{3, 1, 2, 1, 3, 3}, xs)
}
