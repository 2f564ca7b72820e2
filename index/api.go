package index

import (
	"errors"

	"github.com/viant/sqlite-nearby/location"
)

var (
	// ErrEmptyInput is returned when a search is given no query locations.
	ErrEmptyInput = errors.New("index: no query locations")
	// ErrEmptyIndex is returned when searching an index built from no locations.
	ErrEmptyIndex = errors.New("index: no locations in index")
	// ErrIncomparable is returned when no query location has a defined
	// distance to any indexed location, e.g. every query holds a NaN.
	ErrIncomparable = errors.New("index: no comparable query locations")
)

// Index defines a nearest-location index over a fixed set of planar
// locations. It is built once and is read-only afterwards.
type Index interface {
	// Build constructs the index from the given locations, replacing any
	// previous content.
	Build(points []location.Point) error

	// Nearest returns the indexed location closest to query and its distance.
	Nearest(query location.Point) (location.Point, float64, error)

	// FindClosest returns the indexed location closest to any of queries,
	// paired with that distance. When several pairs tie, the pair for the
	// earliest query is kept. Pairs at a NaN distance are ignored.
	FindClosest(queries []location.Point) (location.Point, float64, error)

	// Len returns the number of indexed locations.
	Len() int
}
