package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteStore implements Store on top of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the schema
// exists in the provided database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// SaveSchedule replaces the schedule of user within a single transaction.
func (s *SQLiteStore) SaveSchedule(ctx context.Context, user string, schedule Schedule) error {
	if err := checkUser(user); err != nil {
		return err
	}
	if err := schedule.Validate(); err != nil {
		return err
	}
	return s.replace(ctx, `DELETE FROM schedules WHERE user_id = ?`, user,
		`INSERT INTO schedules(user_id, pos, hour, location, description) VALUES(?, ?, ?, ?, ?)`,
		len(schedule), func(stmt *sql.Stmt, i int) error {
			e := schedule[i]
			_, err := stmt.ExecContext(ctx, user, i, strings.TrimSpace(e.Hour), e.Location, e.Desc)
			return err
		})
}

// Schedule returns the schedule of user in saved order.
func (s *SQLiteStore) Schedule(ctx context.Context, user string) (Schedule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT hour, location, description FROM schedules WHERE user_id = ? ORDER BY pos`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out Schedule
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Hour, &e.Location, &e.Desc); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveFriends replaces the friend list of user. Repeated names are kept
// once, at their first position.
func (s *SQLiteStore) SaveFriends(ctx context.Context, user string, friends []string) error {
	if err := checkUser(user); err != nil {
		return err
	}
	unique := make([]string, 0, len(friends))
	seen := make(map[string]bool, len(friends))
	for _, f := range friends {
		if err := checkUser(f); err != nil {
			return err
		}
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	return s.replace(ctx, `DELETE FROM friends WHERE user_id = ?`, user,
		`INSERT INTO friends(user_id, pos, friend) VALUES(?, ?, ?)`,
		len(unique), func(stmt *sql.Stmt, i int) error {
			_, err := stmt.ExecContext(ctx, user, i, unique[i])
			return err
		})
}

// Friends returns the friend list of user in saved order.
func (s *SQLiteStore) Friends(ctx context.Context, user string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT friend FROM friends WHERE user_id = ? ORDER BY pos`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear removes all schedules and friend lists.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, stmt := range []string{`DELETE FROM schedules`, `DELETE FROM friends`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// replace deletes the rows of user and inserts n new ones in one transaction.
func (s *SQLiteStore) replace(ctx context.Context, del, user, ins string, n int, exec func(stmt *sql.Stmt, i int) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, del, user); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, ins)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := 0; i < n; i++ {
		if err := exec(stmt, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func checkUser(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidUser)
	}
	return nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
