// Package mysql wires the go-sql-driver/mysql driver into quickdb.
package mysql

import (
	gomysql "github.com/go-sql-driver/mysql"

	"github.com/nikola-chen/quickdb/engine"
)

// Open connects using a go-sql-driver DSN
// (user:pass@tcp(host:port)/dbname).
func Open(dsn string, opts ...engine.Option) (*engine.Engine, error) {
	return engine.Open("mysql", dsn, opts...)
}

// OpenConfig connects using a go-sql-driver Config, formatting the DSN for
// the caller.
func OpenConfig(cfg *gomysql.Config, opts ...engine.Option) (*engine.Engine, error) {
	return engine.Open("mysql", cfg.FormatDSN(), opts...)
}
