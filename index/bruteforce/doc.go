// Package bruteforce provides a linear-scan implementation of index.Index.
// It serves as a correctness baseline for the quadtree.
package bruteforce
