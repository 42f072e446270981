// Package engine binds a database handle, a dialect, and logging config into
// the map-driven operations: Insert, Update, Delete, SelectOne, SelectAll,
// and Count. Every call builds fresh SQL, executes it, and shapes the result;
// the engine itself holds no per-call state.
package engine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nikola-chen/quickdb/builder"
	"github.com/nikola-chen/quickdb/dialect"
	"github.com/nikola-chen/quickdb/predicate"
	"github.com/nikola-chen/quickdb/scan"
)

// Row is one fetched row, keyed by column name.
type Row = map[string]any

// Config defines the configuration for Engine.
type Config struct {
	// MaxOpenConns sets the maximum number of open connections to the database.
	MaxOpenConns int
	// MaxIdleConns sets the maximum number of connections in the idle pool.
	MaxIdleConns int
	// ConnMaxLifetime sets the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration
	// LogQueries logs every statement with its kind, SQL text, and a redacted
	// rendering of the bind values.
	LogQueries bool
	// SlowQuery logs statements slower than the threshold even when
	// LogQueries is off.
	SlowQuery time.Duration
	// MaxLogValueLen caps the rendered length of a single bind value in log
	// output. Defaults to 50.
	MaxLogValueLen int
}

// Option is a function to configure the Engine.
type Option func(*Engine) error

// WithLogger sets the logger for the Engine.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the Engine.
func WithConfig(cfg Config) Option {
	return func(e *Engine) error {
		e.cfg = cfg
		return nil
	}
}

// Engine is the entry point for map-driven statements.
type Engine struct {
	db      *sql.DB
	dialect dialect.Dialect
	logger  Logger
	cfg     Config
}

// Open opens a database connection and binds the dialect registered for
// driverName.
func Open(driverName, dsn string, opts ...Option) (*Engine, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	return WithDB(db, driverName, opts...)
}

// WithDB creates an Engine over an existing sql.DB.
func WithDB(db *sql.DB, driverName string, opts ...Option) (*Engine, error) {
	d, ok := dialect.Get(driverName)
	if !ok {
		return nil, errors.New("quickdb: unsupported dialect: " + driverName)
	}

	e := &Engine{
		db:      db,
		dialect: d,
		logger:  NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.cfg.MaxOpenConns > 0 {
		e.db.SetMaxOpenConns(e.cfg.MaxOpenConns)
	}
	if e.cfg.MaxIdleConns > 0 {
		e.db.SetMaxIdleConns(e.cfg.MaxIdleConns)
	}
	if e.cfg.ConnMaxLifetime > 0 {
		e.db.SetConnMaxLifetime(e.cfg.ConnMaxLifetime)
	}

	return e, nil
}

// DB returns the underlying sql.DB.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Dialect returns the database dialect.
func (e *Engine) Dialect() dialect.Dialect {
	return e.dialect
}

// Close closes the database connection.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Ping verifies a connection to the database is still alive.
func (e *Engine) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

// Insert inserts one row of column/value pairs and returns the affected-row
// count.
func (e *Engine) Insert(ctx context.Context, table string, fields map[string]any) (int64, error) {
	query, args, err := builder.Insert(e.dialect, table, fields)
	if err != nil {
		return 0, err
	}
	res, err := e.executor().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// InsertID inserts one row and returns the driver's LastInsertId. Drivers
// without that facility (lib/pq) report an error.
func (e *Engine) InsertID(ctx context.Context, table string, fields map[string]any) (int64, error) {
	query, args, err := builder.Insert(e.dialect, table, fields)
	if err != nil {
		return 0, err
	}
	res, err := e.executor().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update sets the given fields on every row matched by where and returns the
// affected-row count. A nil where is rejected; an empty predicate.Map updates
// ALL rows; pass it only when that is what you mean.
func (e *Engine) Update(ctx context.Context, table string, where predicate.Map, fields map[string]any) (int64, error) {
	query, args, err := builder.Update(e.dialect, table, where, fields)
	if err != nil {
		return 0, err
	}
	res, err := e.executor().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes every row matched by where and returns the affected-row
// count. A nil where is rejected; an empty predicate.Map deletes ALL rows.
func (e *Engine) Delete(ctx context.Context, table string, where predicate.Map) (int64, error) {
	query, args, err := builder.Delete(e.dialect, table, where)
	if err != nil {
		return 0, err
	}
	res, err := e.executor().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SelectOne fetches at most one matching row; the generated SQL carries a
// single-row cap. It returns (nil, nil) when nothing matches; zero rows is
// not an error.
func (e *Engine) SelectOne(ctx context.Context, table string, where predicate.Map, opts ...SelectOption) (Row, error) {
	o := applySelectOptions(opts)
	o.Limit = 1
	o.Offset = 0

	query, args, err := builder.Select(e.dialect, table, where, o)
	if err != nil {
		return nil, err
	}
	rows, err := e.executor().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scan.One(rows)
}

// SelectAll fetches every matching row, possibly none.
func (e *Engine) SelectAll(ctx context.Context, table string, where predicate.Map, opts ...SelectOption) ([]Row, error) {
	query, args, err := builder.Select(e.dialect, table, where, applySelectOptions(opts))
	if err != nil {
		return nil, err
	}
	rows, err := e.executor().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scan.All(rows)
}

// Count returns the number of rows matched by where.
func (e *Engine) Count(ctx context.Context, table string, where predicate.Map) (int64, error) {
	query, args, err := builder.Count(e.dialect, table, where)
	if err != nil {
		return 0, err
	}
	rows, err := e.executor().QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, err
	}
	return n, rows.Err()
}
