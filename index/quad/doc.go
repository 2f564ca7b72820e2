// Package quad implements index.Index with a centroid quadtree. Each split
// divides its locations into four quadrants around their centroid, and
// searches skip every quadrant that cannot hold a closer location than the
// best one found so far.
package quad
