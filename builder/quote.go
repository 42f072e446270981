package builder

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nikola-chen/quickdb/dialect"
)

// quoteIdent validates and quotes a caller-supplied identifier. Dotted names
// (schema.table) are quoted per part. Anything containing SQL metacharacters
// or quote characters is rejected outright rather than escaped: values belong
// in bind parameters, never in identifiers.
func quoteIdent(d dialect.Dialect, ident string) (string, bool) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return "", false
	}
	if strings.ContainsAny(ident, " ()+-/*,%<>=!|&^~?:;'\"`") {
		return "", false
	}

	parts := strings.Split(ident, ".")
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if !isSimpleIdent(p) {
			return "", false
		}
		quoted = append(quoted, d.QuoteIdent(p))
	}
	return strings.Join(quoted, "."), true
}

func isSimpleIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// quoteTable applies the identifier gate to a table name.
func quoteTable(d dialect.Dialect, table string) (string, error) {
	q, ok := quoteIdent(d, table)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return q, nil
}

// quoteColumn applies the identifier gate to a column name.
func quoteColumn(d dialect.Dialect, column string) (string, error) {
	q, ok := quoteIdent(d, column)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}
	return q, nil
}
