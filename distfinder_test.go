package linesimp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestDistanceFinderTotalLength(t *testing.T) {
	tests := []struct {
		name     string
		line     [][]float64
		closed   bool
		expected float64
	}{
		{"Open", unitSquare(), false, 3},
		{"Closed", unitSquare(), true, 4},
		{"SinglePoint", [][]float64{{1, 1}}, false, 0},
		{"Empty", [][]float64{}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDistanceFinder(tt.line, tt.closed, 0)
			assert.InDelta(t, tt.expected, f.TotalLength(), 1e-12)
			// Memoized second call.
			assert.InDelta(t, tt.expected, f.TotalLength(), 1e-12)
		})
	}
}

func TestDistanceFinderLength(t *testing.T) {
	tests := []struct {
		name       string
		closed     bool
		start, end int
		expected   float64
		ok         bool
	}{
		{"Forward", false, 1, 3, 2, true},
		{"WholeOpenLine", false, 0, 3, 3, true},
		{"SameIndex", false, 2, 2, 0, true},
		{"BackwardOpen", false, 3, 1, 0, false},
		{"BackwardClosedWraps", true, 3, 1, 2, true},
		{"ClosingEdgeOnly", true, 3, 0, 1, true},
		{"StartOutOfRange", false, 4, 1, 0, false},
		{"EndOutOfRange", true, 0, 7, 0, false},
		{"NegativeIndex", false, -1, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDistanceFinder(unitSquare(), tt.closed, 0)
			got, ok := f.Length(tt.start, tt.end)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDistanceFinderCached(t *testing.T) {
	line := unitSquare()
	plain := NewDistanceFinder(line, true, 0)
	cached := NewDistanceFinder(line, true, 16)

	assert.InDelta(t, plain.TotalLength(), cached.TotalLength(), 1e-12)

	for start := 0; start < len(line); start++ {
		for end := 0; end < len(line); end++ {
			want, wantOK := plain.Length(start, end)
			got, gotOK := cached.Length(start, end)
			require.Equal(t, wantOK, gotOK)
			assert.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestDistanceFinderSmallCache(t *testing.T) {
	// A cache far smaller than the number of edges must only cost
	// recomputation, never correctness.
	line := make([][]float64, 64)
	for i := range line {
		line[i] = []float64{float64(i), float64(i % 3)}
	}

	plain := NewDistanceFinder(line, false, 0)
	cached := NewDistanceFinder(line, false, 4)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, plain.TotalLength(), cached.TotalLength(), 1e-9)
	}
	want, _ := plain.Length(5, 60)
	got, ok := cached.Length(5, 60)
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-9)
}
