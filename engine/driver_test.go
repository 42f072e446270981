package engine_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync"
	"testing"
)

// A recording fake driver: captures the statements the engine executes and
// replays canned results and rows.
const engineTestDriverName = "quickdb_engine_test"

var registerOnce sync.Once

type recorder struct {
	mu       sync.Mutex
	queries  []string
	args     [][]driver.Value
	affected int64
	insertID int64
	cols     []string
	rows     [][]driver.Value
}

var rec = &recorder{}

func (r *recorder) reset(affected, insertID int64, cols []string, rows [][]driver.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = nil
	r.args = nil
	r.affected = affected
	r.insertID = insertID
	r.cols = cols
	r.rows = rows
}

func (r *recorder) record(query string, args []driver.NamedValue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	vals := make([]driver.Value, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	r.args = append(r.args, vals)
}

func (r *recorder) last() (string, []driver.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queries) == 0 {
		return "", nil
	}
	return r.queries[len(r.queries)-1], r.args[len(r.args)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queries)
}

type testDriver struct{}

func (testDriver) Open(name string) (driver.Conn, error) { return testConn{}, nil }

type testConn struct{}

func (testConn) Prepare(query string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (testConn) Close() error                              { return nil }
func (testConn) Begin() (driver.Tx, error)                 { return nil, driver.ErrSkip }

func (testConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	rec.record(query, args)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return testResult{affected: rec.affected, insertID: rec.insertID}, nil
}

func (testConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	rec.record(query, args)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rows := make([][]driver.Value, len(rec.rows))
	copy(rows, rec.rows)
	return &testRows{cols: rec.cols, rows: rows}, nil
}

type testResult struct {
	affected int64
	insertID int64
}

func (r testResult) LastInsertId() (int64, error) { return r.insertID, nil }
func (r testResult) RowsAffected() (int64, error) { return r.affected, nil }

type testRows struct {
	cols []string
	rows [][]driver.Value
	pos  int
}

func (r *testRows) Columns() []string { return r.cols }
func (r *testRows) Close() error      { return nil }

func (r *testRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	registerOnce.Do(func() {
		sql.Register(engineTestDriverName, testDriver{})
	})
	db, err := sql.Open(engineTestDriverName, "")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
