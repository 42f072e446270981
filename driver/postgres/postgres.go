// Package postgres wires the lib/pq driver into quickdb.
package postgres

import (
	"strings"

	"github.com/lib/pq"

	"github.com/nikola-chen/quickdb/engine"
)

// Open connects to PostgreSQL. Both key/value DSNs and postgres:// URLs are
// accepted; URLs are converted with pq.ParseURL.
func Open(dsn string, opts ...engine.Option) (*engine.Engine, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		kv, err := pq.ParseURL(dsn)
		if err != nil {
			return nil, err
		}
		dsn = kv
	}
	return engine.Open("postgres", dsn, opts...)
}
