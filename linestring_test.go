package linesimp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalLength(t *testing.T) {
	tests := []struct {
		name     string
		line     [][]float64
		expected float64
	}{
		{"Empty", [][]float64{}, 0},
		{"SinglePoint", [][]float64{{1, 2}}, 0},
		{"OneDimensional", [][]float64{{0}, {1}, {2}, {3}, {4}}, 4},
		{"Diagonal2D", [][]float64{{0, 0}, {1, 1}}, math.Sqrt2},
		{"Diagonal3D", [][]float64{{0, 0, 0}, {1, 1, 1}}, math.Sqrt(3)},
		{"Square", [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalLength(tt.line)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}
