package location

import (
	"encoding/binary"
	"fmt"
	"math"
)

const pointSize = 16

// EncodePath encodes points into a BLOB suitable for storage in SQLite. The
// encoding is a little-endian sequence of IEEE 754 float64 (x, y) pairs
// without a length prefix; the length is derived from the BLOB size.
func EncodePath(path []Point) []byte {
	if len(path) == 0 {
		return nil
	}
	b := make([]byte, len(path)*pointSize)
	for i, p := range path {
		binary.LittleEndian.PutUint64(b[i*pointSize:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(b[i*pointSize+8:], math.Float64bits(p.Y))
	}
	return b
}

// DecodePath decodes a BLOB produced by EncodePath.
func DecodePath(b []byte) ([]Point, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%pointSize != 0 {
		return nil, fmt.Errorf("location: invalid path blob length %d (not multiple of %d)", len(b), pointSize)
	}
	path := make([]Point, len(b)/pointSize)
	for i := range path {
		path[i] = Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(b[i*pointSize:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(b[i*pointSize+8:])),
		}
	}
	return path, nil
}
