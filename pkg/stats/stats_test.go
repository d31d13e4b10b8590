package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMedian(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		mean   float64
		median float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{4}, 4, 4},
		{"odd", []float64{22, 25, 25, 25, 27, 29, 120}, 39, 25},
		{"even", []float64{1, 4, 2, 3}, 2.5, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.mean, Mean(tt.in), 1e-9)
			assert.InDelta(t, tt.median, Median(tt.in), 1e-9)
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestModes(t *testing.T) {
	assert.Nil(t, Modes[string](nil))
	assert.Equal(t, []string{"Kolkata"}, Modes([]string{"Kolkata", "Delhi", "Kolkata"}))
	assert.Equal(t, []float64{3, 1}, Modes([]float64{3, 1, 2, 1, 3}))
}

func TestPercentile(t *testing.T) {
	x := []float64{29, 22, 120, 25, 27}
	assert.Equal(t, 22.0, Percentile(x, 0))
	assert.Equal(t, 120.0, Percentile(x, 100))
	assert.Equal(t, 25.0, Percentile(x, 25))
	assert.Equal(t, 27.0, Percentile(x, 50))
	assert.Equal(t, 29.0, Percentile(x, 75))

	y := []float64{50000, 54000, 54000, 62000}
	assert.InDelta(t, 53000.0, Percentile(y, 25), 1e-9)
	assert.InDelta(t, 56000.0, Percentile(y, 75), 1e-9)

	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestPercentileRankIsPTimesNMinusOne(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	// rank 0.25*3 = 0.75 -> 1 + 0.75*(2-1)
	assert.InDelta(t, 1.75, Percentile(x, 25), 1e-9)
	assert.InDelta(t, 3.25, Percentile(x, 75), 1e-9)
	assert.InDelta(t, Percentile(x, 50), Median(x), 1e-9)
}

func TestIQRBounds(t *testing.T) {
	b := IQRBounds([]float64{22, 25, 27, 29, 120})
	assert.Equal(t, 25.0, b.Q1)
	assert.Equal(t, 29.0, b.Q3)
	assert.Equal(t, 4.0, b.IQR())
	assert.Equal(t, 19.0, b.Lower)
	assert.Equal(t, 35.0, b.Upper)
	assert.True(t, b.Contains(19))
	assert.True(t, b.Contains(35))
	assert.False(t, b.Contains(120))
}

func TestIQRBoundsCollapse(t *testing.T) {
	b := IQRBounds([]float64{5, 5, 5, 5, 9})
	assert.Equal(t, 0.0, b.IQR())
	assert.Equal(t, 5.0, b.Lower)
	assert.Equal(t, 5.0, b.Upper)
	assert.False(t, b.Contains(9))
	assert.True(t, b.Contains(5))
}
