package engine

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables honored by OpenFromEnv.
const (
	EnvDriver     = "QUICKDB_DRIVER"
	EnvDSN        = "QUICKDB_DSN"
	EnvLogQueries = "QUICKDB_LOG_QUERIES"
)

// OpenFromEnv opens an Engine from the environment, loading a .env file first
// when one is present. QUICKDB_DRIVER and QUICKDB_DSN are required;
// QUICKDB_LOG_QUERIES=1 (or true) turns on query logging regardless of any
// WithConfig option.
func OpenFromEnv(opts ...Option) (*Engine, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	driverName := os.Getenv(EnvDriver)
	dsn := os.Getenv(EnvDSN)
	if driverName == "" || dsn == "" {
		return nil, errors.New("quickdb: " + EnvDriver + " and " + EnvDSN + " must be set")
	}

	e, err := Open(driverName, dsn, opts...)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvLogQueries); v == "1" || strings.EqualFold(v, "true") {
		e.cfg.LogQueries = true
	}
	return e, nil
}
