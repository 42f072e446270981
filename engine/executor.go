package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Executor is the execution surface the engine needs. *sql.DB, *sql.Tx, and
// *sql.Conn all satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// defaultMaxLogValueLen is how far a bind value is rendered before being
// truncated in log output.
const defaultMaxLogValueLen = 50

// loggingExecutor wraps an Executor and emits one diagnostic line per
// statement: kind, final SQL, redacted binds, duration, and error.
type loggingExecutor struct {
	inner  Executor
	logger Logger
	cfg    Config
}

func (l *loggingExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := l.inner.ExecContext(ctx, query, args...)
	l.log(query, args, time.Since(start), err)
	return res, err
}

func (l *loggingExecutor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := l.inner.QueryContext(ctx, query, args...)
	l.log(query, args, time.Since(start), err)
	return rows, err
}

func (l *loggingExecutor) log(query string, args []any, dur time.Duration, err error) {
	if l.logger == nil {
		return
	}
	if !l.cfg.LogQueries && (l.cfg.SlowQuery <= 0 || dur < l.cfg.SlowQuery) {
		return
	}
	maxLen := l.cfg.MaxLogValueLen
	if maxLen <= 0 {
		maxLen = defaultMaxLogValueLen
	}
	l.logger.Printf("%s sql=%s binds=%s dur=%s err=%v",
		queryKind(query), query, formatBinds(args, maxLen), dur, err)
}

// queryKind is the leading SQL verb, upper-cased.
func queryKind(query string) string {
	query = strings.TrimSpace(query)
	if i := strings.IndexByte(query, ' '); i > 0 {
		query = query[:i]
	}
	return strings.ToUpper(query)
}

// formatBinds renders bind values for logging. Values never reach the log
// raw: non-ASCII text becomes a placeholder and long values are truncated.
func formatBinds(args []any, maxLen int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatBind(v, maxLen))
	}
	b.WriteByte(']')
	return b.String()
}

func formatBind(v any, maxLen int) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return renderText(x, maxLen)
	case []byte:
		return renderText(string(x), maxLen)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return renderText(fmt.Sprintf("%v", v), maxLen)
	}
}

func renderText(s string, maxLen int) string {
	if !isPrintableASCII(s) {
		return "<non-ascii>"
	}
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return "'" + s + "'"
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// executor returns the raw handle unless a logging wrapper is warranted.
func (e *Engine) executor() Executor {
	if e.logger == nil {
		return e.db
	}
	if !e.cfg.LogQueries && e.cfg.SlowQuery <= 0 {
		return e.db
	}
	return &loggingExecutor{inner: e.db, logger: e.logger, cfg: e.cfg}
}
