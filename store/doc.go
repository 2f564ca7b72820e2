// Package store persists per-user schedules and friend lists in SQLite. It
// includes:
//   - Event/Schedule model and the Store interface
//   - SQLiteStore: durable storage over a *sql.DB
//   - Schema helpers to create the schedules and friends tables
//   - hour parsing and lookup of the event starting at a given hour
package store
