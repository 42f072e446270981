// Package builder turns a table name plus column/value and predicate maps
// into parameterized SQL text and an ordered bind list. All identifiers pass
// the quoting gate; all values travel as bind parameters.
package builder

import (
	"sort"
	"strings"

	"github.com/nikola-chen/quickdb/dialect"
	"github.com/nikola-chen/quickdb/predicate"
)

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// SelectOpts adjusts a SELECT beyond table and predicate. The zero value
// selects every column of every matching row.
type SelectOpts struct {
	// Columns projects specific columns; empty means SELECT *.
	Columns []string
	// Order applies ORDER BY terms in the given sequence.
	Order []Order
	// Limit caps the row count when positive. The limit travels as a bind
	// parameter.
	Limit int
	// Offset skips rows when positive. Emitted only together with Limit.
	Offset int
}

// Insert builds an INSERT statement. Columns are emitted in sorted key order
// and values are bound in the same order.
func Insert(d dialect.Dialect, table string, fields map[string]any) (string, []any, error) {
	qTable, err := quoteTable(d, table)
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, ErrMissingFields
	}

	ab := newArgs(d)
	var b strings.Builder
	b.Grow(96)

	b.WriteString("INSERT INTO ")
	b.WriteString(qTable)
	b.WriteString(" (")

	cols := sortedKeys(fields)
	placeholders := make([]string, 0, len(cols))
	for i, c := range cols {
		qc, err := quoteColumn(d, c)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(qc)
		placeholders = append(placeholders, ab.add(fields[c]))
	}

	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(placeholders, ", "))
	b.WriteString(")")

	return b.String(), ab.args, nil
}

// Update builds an UPDATE statement. A nil where is rejected; an empty where
// updates every row; callers wanting a full-table update must pass
// predicate.Map{} explicitly.
func Update(d dialect.Dialect, table string, where predicate.Map, fields map[string]any) (string, []any, error) {
	qTable, err := quoteTable(d, table)
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, ErrMissingFields
	}
	if where == nil {
		return "", nil, ErrMissingWhere
	}

	ab := newArgs(d)
	var b strings.Builder
	b.Grow(96)

	b.WriteString("UPDATE ")
	b.WriteString(qTable)
	b.WriteString(" SET ")

	for i, c := range sortedKeys(fields) {
		qc, err := quoteColumn(d, c)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(qc)
		b.WriteString(" = ")
		b.WriteString(ab.add(fields[c]))
	}

	if err := appendWhere(&b, d, ab, where); err != nil {
		return "", nil, err
	}
	return b.String(), ab.args, nil
}

// Delete builds a DELETE statement. A nil where is rejected; an empty where
// deletes every row.
func Delete(d dialect.Dialect, table string, where predicate.Map) (string, []any, error) {
	qTable, err := quoteTable(d, table)
	if err != nil {
		return "", nil, err
	}
	if where == nil {
		return "", nil, ErrMissingWhere
	}

	ab := newArgs(d)
	var b strings.Builder
	b.Grow(64)

	b.WriteString("DELETE FROM ")
	b.WriteString(qTable)

	if err := appendWhere(&b, d, ab, where); err != nil {
		return "", nil, err
	}
	return b.String(), ab.args, nil
}

// Select builds a SELECT statement. A nil where is rejected; an empty where
// matches every row.
func Select(d dialect.Dialect, table string, where predicate.Map, opts SelectOpts) (string, []any, error) {
	qTable, err := quoteTable(d, table)
	if err != nil {
		return "", nil, err
	}
	if where == nil {
		return "", nil, ErrMissingWhere
	}

	ab := newArgs(d)
	var b strings.Builder
	b.Grow(96)

	b.WriteString("SELECT ")
	if len(opts.Columns) == 0 {
		b.WriteString("*")
	} else {
		for i, c := range opts.Columns {
			qc, err := quoteColumn(d, c)
			if err != nil {
				return "", nil, err
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(qc)
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(qTable)

	if err := appendWhere(&b, d, ab, where); err != nil {
		return "", nil, err
	}

	if len(opts.Order) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range opts.Order {
			qc, err := quoteColumn(d, o.Column)
			if err != nil {
				return "", nil, err
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(qc)
			if o.Desc {
				b.WriteString(" DESC")
			} else {
				b.WriteString(" ASC")
			}
		}
	}

	if opts.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(ab.add(opts.Limit))
		if opts.Offset > 0 {
			b.WriteString(" OFFSET ")
			b.WriteString(ab.add(opts.Offset))
		}
	}

	return b.String(), ab.args, nil
}

// Count builds a SELECT COUNT(*) statement over the same predicate language.
func Count(d dialect.Dialect, table string, where predicate.Map) (string, []any, error) {
	qTable, err := quoteTable(d, table)
	if err != nil {
		return "", nil, err
	}
	if where == nil {
		return "", nil, ErrMissingWhere
	}

	ab := newArgs(d)
	var b strings.Builder
	b.Grow(64)

	b.WriteString("SELECT COUNT(*) FROM ")
	b.WriteString(qTable)

	if err := appendWhere(&b, d, ab, where); err != nil {
		return "", nil, err
	}
	return b.String(), ab.args, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
