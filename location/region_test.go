package location

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionClosest(t *testing.T) {
	r := Region{X1: 1, X2: 3, Y1: 1, Y2: 3}
	assert.Equal(t, Point{2, 2}, r.Closest(Point{2, 2}))
	assert.Equal(t, Point{1, 1}, r.Closest(Point{0, 0}))
	assert.Equal(t, Point{3, 2}, r.Closest(Point{5, 2}))
	assert.Equal(t, Point{2, 3}, r.Closest(Point{2, 9}))
	assert.Equal(t, Point{-4, 7}, Everywhere.Closest(Point{-4, 7}))
}

func TestRegionContains(t *testing.T) {
	r := Region{X1: 1, X2: 3, Y1: 1, Y2: 3}
	assert.True(t, r.Contains(Point{1, 1}))
	assert.True(t, r.Contains(Point{2.9, 2.9}))
	assert.False(t, r.Contains(Point{3, 2}))
	assert.False(t, r.Contains(Point{2, 3}))

	east := Region{X1: 2, X2: math.Inf(1), Y1: math.Inf(-1), Y2: math.Inf(1)}
	assert.True(t, east.Contains(Point{2, 0}))
	assert.False(t, east.Contains(Point{1.999, 0}))
}

func TestDistanceMoreThan(t *testing.T) {
	inf := math.Inf(1)
	r := Region{X1: 1, X2: 3, Y1: 1, Y2: 3}

	// inside the region the distance is zero
	assert.False(t, DistanceMoreThan(Point{2, 2}, r, 0))
	assert.False(t, DistanceMoreThan(Point{2, 2}, r, inf))

	// (0,1) is exactly 1 from the left edge
	assert.False(t, DistanceMoreThan(Point{0, 1}, r, 1))
	assert.True(t, DistanceMoreThan(Point{0, 1}, r, 0.999))

	// corner distance is sqrt(2)
	assert.True(t, DistanceMoreThan(Point{0, 0}, r, 1.4))
	assert.False(t, DistanceMoreThan(Point{0, 0}, r, 1.5))
	assert.False(t, DistanceMoreThan(Point{0, 0}, r, math.Sqrt(2)))
	assert.False(t, DistanceMoreThan(Point{0, 0}, r, Distance(Point{0, 0}, Point{1, 1})))
	assert.True(t, DistanceMoreThan(Point{4, 4}, r, 1.4))

	// unbounded regions
	half := Region{X1: 5, X2: inf, Y1: math.Inf(-1), Y2: inf}
	assert.True(t, DistanceMoreThan(Point{0, 100}, half, 4))
	assert.False(t, DistanceMoreThan(Point{0, 100}, half, 5))
	assert.False(t, DistanceMoreThan(Point{1e9, -1e9}, Everywhere, 0))
	assert.False(t, DistanceMoreThan(Point{0, 0}, half, inf))
}
