package tree

import (
	"errors"
	"math"

	"github.com/viant/sqlite-nearby/location"
)

var (
	// ErrEmptyInput is returned when no query locations are given.
	ErrEmptyInput = errors.New("tree: no query locations")
	// ErrEmptyTree is returned when the tree holds no locations.
	ErrEmptyTree = errors.New("tree: no locations in tree")
	// ErrIncomparable is returned when no query has a defined (non-NaN)
	// distance to any location in the tree.
	ErrIncomparable = errors.New("tree: no comparable query locations")
)

// Closest records the best location found so far by a search and its
// distance to the query. When Found is false Dist is +Inf.
type Closest struct {
	Loc   location.Point
	Dist  float64
	Found bool
}

// NoInfo is the starting point of a search: nothing found yet.
var NoInfo = Closest{Dist: math.Inf(1)}

// Closest returns the closer of best and the closest location in the tree to
// q. bounds must contain every location in the tree. Subtrees whose region is
// farther from q than the current best are skipped; ties keep the location
// found first. Distances are compared as stored in Dist so a tie with a
// caller supplied best is exact. Locations at a NaN distance are never
// taken.
func (t *Tree) Closest(q location.Point, bounds location.Region, best Closest) Closest {
	type frame struct {
		node   *Tree
		bounds location.Region
	}
	stack := []frame{{node: t, bounds: bounds}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil || location.DistanceMoreThan(q, f.bounds, best.Dist) {
			continue
		}
		switch f.node.Kind {
		case Empty:
		case Leaf:
			d := location.Distance(q, f.node.Loc)
			if !math.IsNaN(d) && (!best.Found || d < best.Dist) {
				best = Closest{Loc: f.node.Loc, Dist: d, Found: true}
			}
		case Split:
			order := visitOrder(q, f.node.At)
			regions := quadrants(f.node.At, f.bounds)
			children := f.node.children()
			// push in reverse so the first quadrant is searched first
			for i := len(order) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: children[order[i]], bounds: regions[order[i]]})
			}
		}
	}
	return best
}

// FindClosest returns the location in the tree closest to any of queries,
// paired with that distance. Each query is searched independently; ties keep
// the match for the earliest query. Queries with no defined distance (NaN
// coordinates) are skipped; if every query is skipped ErrIncomparable is
// returned.
func (t *Tree) FindClosest(queries []location.Point) (location.Point, float64, error) {
	if len(queries) == 0 {
		return location.Point{}, 0, ErrEmptyInput
	}
	if t == nil || t.Kind == Empty {
		return location.Point{}, 0, ErrEmptyTree
	}
	closest := NoInfo
	for _, q := range queries {
		if c := t.Closest(q, location.Everywhere, NoInfo); c.Found && (!closest.Found || c.Dist < closest.Dist) {
			closest = c
		}
	}
	if !closest.Found {
		return location.Point{}, 0, ErrIncomparable
	}
	return closest.Loc, closest.Dist, nil
}

// visitOrder lists quadrants starting with the one containing q, then its
// east/west neighbour, then its north/south neighbour, then the diagonal.
func visitOrder(q, at location.Point) [4]quadrant {
	own := quadrantOf(q, at)
	return [4]quadrant{own, own ^ 1, own ^ 2, own ^ 3}
}

// quadrants returns the region of each child, clipped to bounds.
func quadrants(at location.Point, b location.Region) [4]location.Region {
	midX1, midX2 := math.Max(at.X, b.X1), math.Min(at.X, b.X2)
	midY1, midY2 := math.Max(at.Y, b.Y1), math.Min(at.Y, b.Y2)
	return [4]location.Region{
		nw: {X1: b.X1, X2: midX2, Y1: b.Y1, Y2: midY2},
		ne: {X1: midX1, X2: b.X2, Y1: b.Y1, Y2: midY2},
		sw: {X1: b.X1, X2: midX2, Y1: midY1, Y2: b.Y2},
		se: {X1: midX1, X2: b.X2, Y1: midY1, Y2: b.Y2},
	}
}
