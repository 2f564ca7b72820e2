// Package index defines a minimal abstraction for nearest-location indexes
// that are built from a fixed set of planar locations and then queried.
// Implementations in this module include a quadtree and a brute-force
// baseline.
package index
