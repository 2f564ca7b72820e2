package tree

import "github.com/viant/sqlite-nearby/location"

type quadrant int

const (
	nw quadrant = iota
	ne
	sw
	se
)

// quadrantOf places p relative to at. Ties go east and south.
func quadrantOf(p, at location.Point) quadrant {
	east := p.X >= at.X
	south := p.Y >= at.Y
	switch {
	case !east && !south:
		return nw
	case east && !south:
		return ne
	case !east && south:
		return sw
	default:
		return se
	}
}

// Build returns a tree containing exactly the given locations. Each split is
// taken at the centroid of the locations below it, and splitting continues
// until every leaf holds a single position. Coincident locations collapse
// into one leaf that records how many copies it holds.
func Build(points []location.Point) *Tree {
	type task struct {
		node   *Tree
		points []location.Point
	}
	root := &Tree{}
	stack := []task{{node: root, points: points}}
	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(tk.points) == 0 {
			continue
		}
		if coincident(tk.points) {
			*tk.node = Tree{Kind: Leaf, Loc: tk.points[0], Count: len(tk.points)}
			continue
		}
		at, _ := location.Centroid(tk.points) // len(tk.points) >= 2
		parts := partition(tk.points, at)
		if !separates(parts) {
			// The rounded mean can fail to split locations that differ by an ulp.
			var ok bool
			if at, ok = separator(tk.points, at); !ok {
				*tk.node = Tree{Kind: Leaf, Loc: tk.points[0], Count: len(tk.points)}
				continue
			}
			parts = partition(tk.points, at)
		}
		node := tk.node
		*node = Tree{Kind: Split, At: at, NW: &Tree{}, NE: &Tree{}, SW: &Tree{}, SE: &Tree{}}
		children := node.children()
		for q := se; q >= nw; q-- {
			stack = append(stack, task{node: children[q], points: parts[q]})
		}
	}
	return root
}

// partition assigns every point to exactly one quadrant around at.
func partition(points []location.Point, at location.Point) [4][]location.Point {
	var parts [4][]location.Point
	for _, p := range points {
		q := quadrantOf(p, at)
		parts[q] = append(parts[q], p)
	}
	return parts
}

func separates(parts [4][]location.Point) bool {
	nonEmpty := 0
	for _, part := range parts {
		if len(part) > 0 {
			nonEmpty++
		}
	}
	return nonEmpty > 1
}

// separator moves the split onto the largest coordinate of an axis with
// spread, which always leaves the smaller coordinates west (or north).
func separator(points []location.Point, at location.Point) (location.Point, bool) {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	switch {
	case lo.X < hi.X:
		return location.Point{X: hi.X, Y: at.Y}, true
	case lo.Y < hi.Y:
		return location.Point{X: at.X, Y: hi.Y}, true
	}
	return at, false
}

func coincident(points []location.Point) bool {
	first := points[0]
	for _, p := range points[1:] {
		if !location.Same(first, p) {
			return false
		}
	}
	return true
}
