package store

import (
	"context"
	"database/sql"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS schedules (
    user_id     TEXT NOT NULL,
    pos         INTEGER NOT NULL,
    hour        TEXT NOT NULL,
    location    TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    PRIMARY KEY(user_id, pos)
);`, `
CREATE TABLE IF NOT EXISTS friends (
    user_id TEXT NOT NULL,
    pos     INTEGER NOT NULL,
    friend  TEXT NOT NULL,
    PRIMARY KEY(user_id, pos)
);`,
}

// EnsureSchema creates the schedules and friends tables in the provided
// database if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
