package quad

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/sqlite-nearby/index"
	"github.com/viant/sqlite-nearby/internal/quad/tree"
	"github.com/viant/sqlite-nearby/location"
)

// Index is a nearest-location index backed by an immutable quadtree.
// Build replaces the tree; concurrent searches on a built Index are safe
// as long as Build is not called at the same time.
type Index struct {
	opts options
	root *tree.Tree
}

// New returns an empty Index.
func New(opts ...Option) *Index {
	return &Index{opts: newOptions(opts), root: tree.Build(nil)}
}

// BuildTree returns an Index containing exactly the given locations.
func BuildTree(points []location.Point, opts ...Option) *Index {
	i := New(opts...)
	_ = i.Build(points)
	return i
}

// Build constructs the quadtree over points.
func (i *Index) Build(points []location.Point) error {
	i.root = tree.Build(points)
	if i.debug() {
		i.opts.logger.Debug("quadtree built",
			"count", len(points),
			"depth", i.root.Depth(),
		)
	}
	return nil
}

// Len returns the number of indexed locations, duplicates included.
func (i *Index) Len() int { return i.root.Len() }

// Nearest returns the indexed location closest to query.
func (i *Index) Nearest(query location.Point) (location.Point, float64, error) {
	return i.FindClosest([]location.Point{query})
}

// FindClosest returns the indexed location closest to any of queries and
// that distance.
func (i *Index) FindClosest(queries []location.Point) (location.Point, float64, error) {
	loc, dist, err := i.root.FindClosest(queries)
	if err != nil {
		err = translateError(err)
		i.opts.logger.Debug("quadtree search failed", "queries", len(queries), "error", err)
		return location.Point{}, 0, err
	}
	if i.debug() {
		i.opts.logger.Debug("quadtree search completed",
			"queries", len(queries),
			"location", loc.String(),
			"distance", dist,
		)
	}
	return loc, dist, nil
}

// debug reports whether debug records would be emitted, so that attributes
// needing a tree walk or formatting are only computed when they are used.
func (i *Index) debug() bool {
	return i.opts.logger.Enabled(context.Background(), slog.LevelDebug)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, tree.ErrEmptyInput):
		return fmt.Errorf("%w: %w", index.ErrEmptyInput, err)
	case errors.Is(err, tree.ErrEmptyTree):
		return fmt.Errorf("%w: %w", index.ErrEmptyIndex, err)
	case errors.Is(err, tree.ErrIncomparable):
		return fmt.Errorf("%w: %w", index.ErrIncomparable, err)
	}
	return err
}

var _ index.Index = (*Index)(nil)
