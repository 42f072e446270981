package engine

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestQueryKind(t *testing.T) {
	tests := []struct{ query, want string }{
		{"SELECT * FROM `t`", "SELECT"},
		{"insert into t (a) values (?)", "INSERT"},
		{"  UPDATE t SET a = ?", "UPDATE"},
		{"DELETE FROM t", "DELETE"},
	}
	for _, tt := range tests {
		if got := queryKind(tt.query); got != tt.want {
			t.Errorf("queryKind(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestFormatBindRedaction(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"short string", "alice", "'alice'"},
		{"bytes", []byte("abc"), "'abc'"},
		{"non-ascii", "héllo", "<non-ascii>"},
		{"binary", []byte{0x00, 0x01}, "<non-ascii>"},
		{"control chars", "a\nb", "<non-ascii>"},
	}
	for _, tt := range tests {
		if got := formatBind(tt.in, defaultMaxLogValueLen); got != tt.want {
			t.Errorf("%s: formatBind = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatBindTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := formatBind(long, defaultMaxLogValueLen)
	want := "'" + strings.Repeat("x", 50) + "...'"
	if got != want {
		t.Fatalf("truncation mismatch:\nwant: %s\ngot : %s", want, got)
	}
}

func TestFormatBinds(t *testing.T) {
	got := formatBinds([]any{"alice", 30, nil}, defaultMaxLogValueLen)
	want := "['alice', 30, NULL]"
	if got != want {
		t.Fatalf("formatBinds = %q, want %q", got, want)
	}
}

type captureLogger struct{ lines []string }

func (c *captureLogger) Printf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestLoggingExecutorLine(t *testing.T) {
	logger := &captureLogger{}
	l := &loggingExecutor{logger: logger, cfg: Config{LogQueries: true}}

	l.log("SELECT * FROM `users` WHERE (`name` = ?)", []any{"héllo", 30}, time.Millisecond, nil)

	if len(logger.lines) != 1 {
		t.Fatalf("want 1 log line, got %d", len(logger.lines))
	}
	line := logger.lines[0]
	if !strings.HasPrefix(line, "SELECT sql=") {
		t.Errorf("line must lead with the query kind: %s", line)
	}
	if !strings.Contains(line, "binds=[<non-ascii>, 30]") {
		t.Errorf("binds not redacted: %s", line)
	}
	if strings.Contains(line, "héllo") {
		t.Errorf("raw non-ASCII value leaked into the log: %s", line)
	}
}

func TestLoggingExecutorSilentByDefault(t *testing.T) {
	logger := &captureLogger{}
	l := &loggingExecutor{logger: logger, cfg: Config{}}

	l.log("SELECT 1", nil, time.Millisecond, nil)
	if len(logger.lines) != 0 {
		t.Fatalf("nothing may be logged without LogQueries or SlowQuery: %v", logger.lines)
	}
}

func TestLoggingExecutorSlowQuery(t *testing.T) {
	logger := &captureLogger{}
	l := &loggingExecutor{logger: logger, cfg: Config{SlowQuery: time.Millisecond}}

	l.log("SELECT 1", nil, time.Microsecond, nil)
	if len(logger.lines) != 0 {
		t.Fatalf("fast query logged below the slow threshold: %v", logger.lines)
	}
	l.log("SELECT 1", nil, 2*time.Millisecond, nil)
	if len(logger.lines) != 1 {
		t.Fatalf("slow query not logged: %v", logger.lines)
	}
}

func TestLoggingExecutorGate(t *testing.T) {
	e := &Engine{logger: NopLogger{}}
	if _, ok := e.executor().(*loggingExecutor); ok {
		t.Fatal("logging executor attached with logging disabled")
	}

	e.cfg.LogQueries = true
	if _, ok := e.executor().(*loggingExecutor); !ok {
		t.Fatal("logging executor missing with LogQueries on")
	}

	e.cfg.LogQueries = false
	e.cfg.SlowQuery = time.Millisecond
	if _, ok := e.executor().(*loggingExecutor); !ok {
		t.Fatal("logging executor missing with SlowQuery threshold set")
	}
}
