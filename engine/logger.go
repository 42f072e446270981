package engine

import (
	"log"
	"os"
)

// Logger receives pre-formatted diagnostic lines. The engine decides whether
// to log and what the line says; transport is the host's business.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...any) {}

// StdLogger logs to stdout with a quickdb prefix.
func StdLogger() Logger {
	return log.New(os.Stdout, "[quickdb] ", log.LstdFlags)
}
