package pathtab

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/viant/sqlite-nearby/location"
	"modernc.org/sqlite/vtab"
)

// Module implements vtab.Module for the path_points virtual table.
type Module struct{}

// Table is a single path_points virtual table instance.
type Table struct{}

// Cursor iterates over the points of one decoded path.
type Cursor struct {
	points []location.Point
	pos    int
}

const (
	colPath = iota
	colPos
	colX
	colY
)

// Register registers the path_points module with the provided *sql.DB.
func Register(db *sql.DB) error {
	if err := vtab.RegisterModule(db, "path_points", &Module{}); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

// Create declares the table schema.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.declare(ctx, args)
}

// Connect attaches to an existing table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.declare(ctx, args)
}

func (m *Module) declare(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("path_points: need at least 3 args, got %d", len(args))
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(path BLOB, pos INTEGER, x REAL, y REAL)", args[2])); err != nil {
		return nil, err
	}
	return &Table{}, nil
}

// BestIndex selects the MATCH constraint on the path column, when present.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == colPath && c.Op == vtab.OpMATCH {
			c.ArgIndex = 1
			info.IdxNum = 1
			break
		}
	}
	return nil
}

// Open returns a new cursor over the table.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{}, nil }

// Disconnect is a no-op; the table holds no resources.
func (t *Table) Disconnect() error { return nil }

// Destroy is a no-op; the table has no backing storage.
func (t *Table) Destroy() error { return nil }

// Filter decodes the MATCH operand. Without one the table is empty.
func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	c.points = nil
	c.pos = 0
	if idxNum != 1 || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	blob, ok := vals[0].([]byte)
	if !ok {
		return fmt.Errorf("path_points: MATCH expects an encoded path as BLOB, got %T", vals[0])
	}
	points, err := location.DecodePath(blob)
	if err != nil {
		return err
	}
	c.points = points
	return nil
}

// Next advances to the following point.
func (c *Cursor) Next() error {
	if c.pos < len(c.points) {
		c.pos++
	}
	return nil
}

// Eof reports whether every point has been returned.
func (c *Cursor) Eof() bool { return c.pos >= len(c.points) }

// Column returns pos, x or y of the current point; the path column reads as NULL.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.points) {
		return nil, fmt.Errorf("path_points: Column out of range")
	}
	p := c.points[c.pos]
	switch col {
	case colPos:
		return int64(c.pos), nil
	case colX:
		return p.X, nil
	case colY:
		return p.Y, nil
	}
	return nil, nil
}

// Rowid returns the 1-based position of the current point.
func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

// Close releases the decoded path.
func (c *Cursor) Close() error {
	c.points = nil
	c.pos = 0
	return nil
}
