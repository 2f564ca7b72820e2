package location

import (
	"errors"
	"math"
	"strconv"
)

// ErrInvalidInput is returned when a computation needs at least one point.
var ErrInvalidInput = errors.New("location: at least one point is required")

// Point represents an (x, y) coordinate on the map.
type Point struct {
	X float64
	Y float64
}

// String renders the point as (x,y).
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Same reports whether both points have identical coordinates.
func Same(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// SquaredDistance returns dist(a, b)^2.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Centroid returns the average position of the given points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrInvalidInput
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}, nil
}
