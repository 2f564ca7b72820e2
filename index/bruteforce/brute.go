package bruteforce

import (
	"math"

	"github.com/viant/sqlite-nearby/index"
	"github.com/viant/sqlite-nearby/location"
)

// Index is a simple brute-force nearest-location index.
type Index struct {
	points []location.Point
}

// New returns an index holding a copy of points.
func New(points []location.Point) *Index {
	i := &Index{}
	_ = i.Build(points)
	return i
}

// Build copies the given locations.
func (i *Index) Build(points []location.Point) error {
	i.points = append([]location.Point(nil), points...)
	return nil
}

// Len returns the number of indexed locations.
func (i *Index) Len() int { return len(i.points) }

// Nearest scans every location; ties keep the earliest one.
func (i *Index) Nearest(query location.Point) (location.Point, float64, error) {
	return i.FindClosest([]location.Point{query})
}

// FindClosest scans every (query, location) pair; ties keep the earliest
// query and, for that query, the earliest location. Pairs at a NaN distance
// are skipped.
func (i *Index) FindClosest(queries []location.Point) (location.Point, float64, error) {
	if len(queries) == 0 {
		return location.Point{}, 0, index.ErrEmptyInput
	}
	if len(i.points) == 0 {
		return location.Point{}, 0, index.ErrEmptyIndex
	}
	best := -1
	bestDist := math.Inf(1)
	for _, q := range queries {
		for j, p := range i.points {
			d := location.Distance(q, p)
			if math.IsNaN(d) {
				continue
			}
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
	}
	if best < 0 {
		return location.Point{}, 0, index.ErrIncomparable
	}
	return i.points[best], bestDist, nil
}

var _ index.Index = (*Index)(nil)
