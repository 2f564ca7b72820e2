package location

import "math"

// Region is an axis aligned rectangle. Any edge may be infinite.
// Inv: X1 <= X2 and Y1 <= Y2
type Region struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Everywhere covers the entire plane.
var Everywhere = Region{X1: math.Inf(-1), X2: math.Inf(1), Y1: math.Inf(-1), Y2: math.Inf(1)}

// Closest returns the point of the region nearest to p.
func (r Region) Closest(p Point) Point {
	return Point{X: clamp(p.X, r.X1, r.X2), Y: clamp(p.Y, r.Y1, r.Y2)}
}

// Contains reports whether X1 <= p.X < X2 and Y1 <= p.Y < Y2.
func (r Region) Contains(p Point) bool {
	return r.X1 <= p.X && p.X < r.X2 && r.Y1 <= p.Y && p.Y < r.Y2
}

// DistanceMoreThan reports whether every point of region lies farther than
// threshold from p. The comparison is made on Distance, not on squares, so a
// threshold taken from Distance of a point in region never prunes it.
func DistanceMoreThan(p Point, region Region, threshold float64) bool {
	return Distance(p, region.Closest(p)) > threshold
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
