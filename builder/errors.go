package builder

import "errors"

// Sentinel errors reported before any SQL is built. Check them with
// errors.Is; the returned error may carry extra context.
var (
	// ErrInvalidTable is returned when a table name is empty or not
	// identifier-shaped.
	ErrInvalidTable = errors.New("quickdb: invalid table identifier")

	// ErrInvalidColumn is returned when a column key in a field or predicate
	// map is not identifier-shaped.
	ErrInvalidColumn = errors.New("quickdb: invalid column identifier")

	// ErrMissingFields is returned when INSERT or UPDATE is given no
	// column/value pairs.
	ErrMissingFields = errors.New("quickdb: missing column/value fields")

	// ErrMissingWhere is returned when UPDATE, DELETE, or SELECT is given a
	// nil predicate map. An empty map is valid and matches every row.
	ErrMissingWhere = errors.New("quickdb: missing predicate map")
)
