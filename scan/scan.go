// Package scan shapes *sql.Rows into column-name-keyed maps.
package scan

import "database/sql"

// One consumes at most one row and returns it as a map, or nil when the
// result set is empty. Zero matching rows is not an error.
func One(rows *sql.Rows) (map[string]any, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRow(rows, cols)
}

// All consumes every row into a slice of maps, possibly empty.
func All(rows *sql.Rows) ([]map[string]any, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		m, err := scanRow(rows, cols)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// scanRow reads the current row into a fresh map. Drivers report text columns
// as []byte; those are converted to string so map consumers see plain values.
// Duplicate column names overwrite left to right.
func scanRow(rows *sql.Rows, cols []string) (map[string]any, error) {
	holders := make([]any, len(cols))
	for i := range holders {
		var v any
		holders[i] = &v
	}
	if err := rows.Scan(holders...); err != nil {
		return nil, err
	}

	m := make(map[string]any, len(cols))
	for i, c := range cols {
		v := *(holders[i].(*any))
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		m[c] = v
	}
	return m, nil
}
