package builder

import (
	"sort"
	"strings"

	"github.com/nikola-chen/quickdb/dialect"
	"github.com/nikola-chen/quickdb/predicate"
)

// appendWhere compiles a predicate map onto b. Columns are emitted in sorted
// order so the same map always yields the same SQL, joined with AND. An empty
// map emits no WHERE clause at all.
func appendWhere(b *strings.Builder, d dialect.Dialect, ab *argBuilder, where predicate.Map) error {
	if len(where) == 0 {
		return nil
	}

	cols := make([]string, 0, len(where))
	for c := range where {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	b.WriteString(" WHERE ")
	for i, c := range cols {
		qc, err := quoteColumn(d, c)
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString("(")
		if err := where[c].Append(b, qc, ab.add); err != nil {
			return err
		}
		b.WriteString(")")
	}
	return nil
}
