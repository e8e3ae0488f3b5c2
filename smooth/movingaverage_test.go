package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name     string
		line     [][]float64
		width    int
		expected [][]float64
	}{
		{
			name:     "WidthOne",
			line:     [][]float64{{0, 0}, {3, 0}, {0, 0}},
			width:    1,
			expected: [][]float64{{0, 0}, {1, 0}, {0, 0}},
		},
		{
			name:     "FlattensSpike",
			line:     [][]float64{{0, 0}, {1, 0}, {2, 3}, {3, 0}, {4, 0}},
			width:    1,
			expected: [][]float64{{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 0}},
		},
		{
			name:     "ZeroWidthIsIdentity",
			line:     [][]float64{{0, 0}, {1, 5}, {2, 0}},
			width:    0,
			expected: [][]float64{{0, 0}, {1, 5}, {2, 0}},
		},
		{
			name:     "LineTooShortForWidth",
			line:     [][]float64{{0, 0}, {1, 5}, {2, 0}, {3, 5}, {4, 0}},
			width:    5,
			expected: [][]float64{{0, 0}, {1, 5}, {2, 0}, {3, 5}, {4, 0}},
		},
		{
			name:     "Empty",
			line:     [][]float64{},
			width:    2,
			expected: [][]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(tt.line, tt.width)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMovingAverageKeepsEndpoints(t *testing.T) {
	line := make([][]float64, 20)
	for i := range line {
		line[i] = []float64{float64(i), float64(i % 4)}
	}

	for _, width := range []int{1, 2, 5} {
		out := MovingAverage(line, width)
		require.Len(t, out, len(line))
		assert.Equal(t, line[0], out[0], "width %d", width)
		assert.Equal(t, line[len(line)-1], out[len(out)-1], "width %d", width)
	}
}

func TestMovingAverageStraightLineIsFixedPoint(t *testing.T) {
	line := straightLine(12)

	out := MovingAverage(line, 3)
	require.Len(t, out, len(line))
	for i := range line {
		for k := range line[i] {
			assert.InDelta(t, line[i][k], out[i][k], 1e-12, "point %d dim %d", i, k)
		}
	}
}
