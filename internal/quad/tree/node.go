// Package tree implements an immutable centroid quadtree over planar
// locations with branch-and-bound nearest-location search.
package tree

import "github.com/viant/sqlite-nearby/location"

// Kind discriminates the variants of a Tree node.
type Kind uint8

const (
	// Empty holds no locations.
	Empty Kind = iota
	// Leaf holds a single location, possibly repeated Count times.
	Leaf
	// Split divides its locations into four quadrants around At.
	Split
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Leaf:
		return "leaf"
	case Split:
		return "split"
	}
	return "unknown"
}

// Tree organizes locations into quadrants. A Tree is immutable once built
// and every Split node exclusively owns its four children.
//
// Quadrants follow screen orientation: north is y < At.Y, west is x < At.X.
// Locations on a dividing line belong to the east or south side.
type Tree struct {
	Kind Kind

	// Leaf fields.
	Loc   location.Point
	Count int

	// Split fields.
	At             location.Point
	NW, NE, SW, SE *Tree
}

// children returns the split children in NW, NE, SW, SE order.
func (t *Tree) children() [4]*Tree {
	return [4]*Tree{t.NW, t.NE, t.SW, t.SE}
}

// Len returns the number of locations in the tree, counting duplicates.
func (t *Tree) Len() int {
	n := 0
	t.walk(func(node *Tree, _ int) {
		if node.Kind == Leaf {
			n += node.Count
		}
	})
	return n
}

// Points returns every location held by the tree, duplicates included.
func (t *Tree) Points() []location.Point {
	var out []location.Point
	t.walk(func(node *Tree, _ int) {
		for i := 0; node.Kind == Leaf && i < node.Count; i++ {
			out = append(out, node.Loc)
		}
	})
	return out
}

// Depth returns the number of levels below the root; a split root over two
// leaves has depth 1.
func (t *Tree) Depth() int {
	maxDepth := 0
	t.walk(func(_ *Tree, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}

func (t *Tree) walk(visit func(node *Tree, depth int)) {
	if t == nil {
		return
	}
	type frame struct {
		node  *Tree
		depth int
	}
	stack := []frame{{node: t}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(f.node, f.depth)
		if f.node.Kind != Split {
			continue
		}
		for _, child := range f.node.children() {
			stack = append(stack, frame{node: child, depth: f.depth + 1})
		}
	}
}
