package engine

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/sqlite-nearby/index"
	"github.com/viant/sqlite-nearby/index/quad"
	"github.com/viant/sqlite-nearby/location"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterLocationFunctions registers loc_distance and path_nearest with the
// driver so they are available on new connections opened after this call.
// Existing open connections will not see new functions.
//
//	loc_distance(x1, y1, x2, y2) -> REAL
//	path_nearest(a BLOB, b BLOB) -> REAL nearest approach of two encoded paths
func RegisterLocationFunctions() error {
	registerOnce.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("loc_distance", 4, locDistanceImpl); err != nil {
			registerErr = err
			return
		}
		registerErr = sqlite.RegisterDeterministicScalarFunction("path_nearest", 2, pathNearestImpl)
	})
	return registerErr
}

func asFloat(arg driver.Value) (float64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("loc: unsupported argument type %T for coordinate; want REAL", arg)
	}
}

func asPath(arg driver.Value) ([]location.Point, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return location.DecodePath(v)
	default:
		return nil, fmt.Errorf("loc: unsupported argument type %T for path; want BLOB", arg)
	}
}

func locDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("loc_distance: expected 4 arguments, got %d", len(args))
	}
	var coords [4]float64
	for i, arg := range args {
		v, ok, err := asFloat(arg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		coords[i] = v
	}
	a := location.Point{X: coords[0], Y: coords[1]}
	b := location.Point{X: coords[2], Y: coords[3]}
	return location.Distance(a, b), nil
}

func pathNearestImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("path_nearest: expected 2 arguments, got %d", len(args))
	}
	a, err := asPath(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asPath(args[1])
	if err != nil {
		return nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	_, dist, err := quad.BuildTree(a).FindClosest(b)
	if errors.Is(err, index.ErrIncomparable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dist, nil
}
