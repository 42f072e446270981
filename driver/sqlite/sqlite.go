// Package sqlite wires the mattn/go-sqlite3 driver into quickdb.
package sqlite

import (
	_ "github.com/mattn/go-sqlite3"

	"github.com/nikola-chen/quickdb/engine"
)

// Open opens a SQLite database file (or ":memory:") as a quickdb engine.
func Open(path string, opts ...engine.Option) (*engine.Engine, error) {
	return engine.Open("sqlite3", path, opts...)
}
