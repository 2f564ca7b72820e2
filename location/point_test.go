package location

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSame(t *testing.T) {
	assert.True(t, Same(Point{1, 2}, Point{1, 2}))
	assert.False(t, Same(Point{1, 2}, Point{2, 1}))
	assert.False(t, Same(Point{1, 2}, Point{1, 2.0000001}))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Point
		squared float64
	}{
		{"Same", Point{1, 1}, Point{1, 1}, 0},
		{"Horizontal", Point{1, 1}, Point{2, 1}, 1},
		{"Vertical", Point{1, 4}, Point{1, 1}, 9},
		{"Diagonal", Point{0, 0}, Point{3, 4}, 25},
		{"Negative", Point{-1, -1}, Point{2, 3}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.squared, SquaredDistance(tt.a, tt.b))
			assert.Equal(t, tt.squared, SquaredDistance(tt.b, tt.a))
			assert.InDelta(t, math.Sqrt(tt.squared), Distance(tt.a, tt.b), 1e-12)
		})
	}
}

func TestCentroid(t *testing.T) {
	_, err := Centroid(nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	c, err := Centroid([]Point{{1, 1}})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 1}, c)

	c, err = Centroid([]Point{{1, 1}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, Point{2, 2}, c)

	c, err = Centroid([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}})
	require.NoError(t, err)
	assert.Equal(t, Point{2, 2}, c)

	c, err = Centroid([]Point{{1, 3}, {3, 1}, {5, 5}, {7, 7}})
	require.NoError(t, err)
	assert.Equal(t, Point{4, 4}, c)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", Point{1.5, -2}.String())
}
