// Package quickdb provides map-driven CRUD over database/sql: callers name a
// table and supply column/value maps and predicate maps, and quickdb builds
// and executes parameterized SQL.
//
// Identifiers (table and column names) are validated and dialect-quoted
// before they reach SQL text; values always travel as bind parameters. That
// split is the package's one safety invariant.
//
//	db, err := quickdb.Open("sqlite3", "app.db")
//	...
//	_, err = db.Insert(ctx, "users", quickdb.Fields{"name": "Alice", "age": 30})
//	row, err := db.SelectOne(ctx, "users", quickdb.Where{"name": quickdb.Eq("Alice")})
//	n, err := db.Delete(ctx, "users", quickdb.Where{"id": quickdb.In(1, 2, 3)})
//
// A nil Where is rejected by Update, Delete, and the selects; an explicitly
// empty quickdb.Where{} matches every row, which on Update and Delete touches
// the whole table.
package quickdb

import (
	"database/sql"

	"github.com/nikola-chen/quickdb/builder"
	"github.com/nikola-chen/quickdb/engine"
	"github.com/nikola-chen/quickdb/predicate"
)

type (
	DB     = engine.Engine
	Logger = engine.Logger
	Config = engine.Config
	Option = engine.Option

	// Row is one fetched row, keyed by column name.
	Row = engine.Row

	// Fields holds column/value pairs for Insert and Update.
	Fields = map[string]any

	// Where describes a WHERE clause, one condition per column.
	Where = predicate.Map
)

// Condition constructors.
var (
	Eq   = predicate.Eq
	Null = predicate.Null
	In   = predicate.In
	Cmp  = predicate.Cmp
)

// FromMap converts a loosely-typed condition map (nil values, slices,
// single-operator maps, plain scalars) into a Where.
var FromMap = predicate.From

// Engine options.
var (
	WithLogger = engine.WithLogger
	WithConfig = engine.WithConfig
)

// Select options.
var (
	Columns = engine.Columns
	OrderBy = engine.OrderBy
	Limit   = engine.Limit
	Offset  = engine.Offset
)

// Sentinel errors, checkable with errors.Is.
var (
	ErrInvalidTable    = builder.ErrInvalidTable
	ErrInvalidColumn   = builder.ErrInvalidColumn
	ErrMissingFields   = builder.ErrMissingFields
	ErrMissingWhere    = builder.ErrMissingWhere
	ErrInvalidOperator = predicate.ErrInvalidOperator
)

// Open opens a database connection and binds the dialect registered for
// driverName.
func Open(driverName, dsn string, opts ...Option) (*DB, error) {
	return engine.Open(driverName, dsn, opts...)
}

// WithDB wraps an existing sql.DB.
func WithDB(db *sql.DB, driverName string, opts ...Option) (*DB, error) {
	return engine.WithDB(db, driverName, opts...)
}

// OpenFromEnv opens a connection from QUICKDB_DRIVER and QUICKDB_DSN, loading
// a .env file first when one is present.
func OpenFromEnv(opts ...Option) (*DB, error) {
	return engine.OpenFromEnv(opts...)
}
