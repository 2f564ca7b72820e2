// Package pathtab exposes encoded paths to SQL as rows through a read-only
// virtual table.
//
// Usage:
//
//	CREATE VIRTUAL TABLE path_points USING path_points(path);
//	SELECT pos, x, y FROM path_points WHERE path MATCH :blob;
//
// The MATCH operand is a BLOB produced by location.EncodePath; each of its
// points is returned as one row in path order.
package pathtab
