// Package location defines the planar geometry shared by this project:
//   - Point and Region value types
//   - distance helpers and the region pruning test used by tree searches
//   - a BLOB encoding for paths so they can be stored and passed to SQLite
package location
