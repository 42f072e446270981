// Package predicate defines the condition mini-language that quickdb compiles
// into WHERE clauses. A Map holds one Cond per column; a Cond is one of four
// closed cases: equality, IS NULL, IN membership, or a whitelisted comparison.
package predicate

import (
	"fmt"
	"reflect"
	"strings"
)

type kind int

const (
	kindEq kind = iota
	kindNull
	kindIn
	kindCmp
)

// Cond is a single condition on one column. The zero value is not usable;
// construct conditions with Eq, Null, In, or Cmp.
type Cond struct {
	kind   kind
	op     string
	value  any
	values []any
}

// Map describes a WHERE clause, keyed by column name. An empty Map matches
// every row. A nil Map means "no predicate supplied" and is rejected by
// operations that require one.
type Map map[string]Cond

// Eq matches rows where the column equals value. Eq(nil) compiles to IS NULL,
// mirroring how a missing value behaves in SQL.
func Eq(value any) Cond {
	if value == nil {
		return Null()
	}
	return Cond{kind: kindEq, value: value}
}

// Null matches rows where the column IS NULL. It contributes no bind
// parameters.
func Null() Cond {
	return Cond{kind: kindNull}
}

// In matches rows where the column is one of the given values. A single slice
// argument is flattened, so In(ids) and In(1, 2, 3) both work. An empty value
// set compiles to 1=0 and matches nothing.
func In(values ...any) Cond {
	flat := make([]any, 0, len(values))
	for _, v := range values {
		rv := reflect.ValueOf(v)
		if v != nil && rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				flat = append(flat, rv.Index(i).Interface())
			}
			continue
		}
		flat = append(flat, v)
	}
	return Cond{kind: kindIn, values: flat}
}

// Cmp matches rows where the column compares to value under op. The operator
// is checked case-insensitively against the whitelist when the condition is
// compiled; anything outside it aborts the whole statement.
func Cmp(op string, value any) Cond {
	return Cond{kind: kindCmp, op: op, value: value}
}

// Append compiles the condition onto b. col must already be quoted; add
// registers one bind parameter and returns its placeholder.
func (c Cond) Append(b *strings.Builder, col string, add func(any) string) error {
	switch c.kind {
	case kindNull:
		b.WriteString(col)
		b.WriteString(" IS NULL")
	case kindEq:
		b.WriteString(col)
		b.WriteString(" = ")
		b.WriteString(add(c.value))
	case kindIn:
		if len(c.values) == 0 {
			// Vacuously false: an empty membership set can match no row.
			b.WriteString("1=0")
			return nil
		}
		b.WriteString(col)
		b.WriteString(" IN (")
		for i, v := range c.values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(add(v))
		}
		b.WriteString(")")
	case kindCmp:
		op, err := NormalizeOp(c.op)
		if err != nil {
			return err
		}
		b.WriteString(col)
		b.WriteString(" ")
		b.WriteString(op)
		b.WriteString(" ")
		b.WriteString(add(c.value))
	default:
		return fmt.Errorf("quickdb: invalid condition kind %d", c.kind)
	}
	return nil
}

// From converts a loosely-typed condition map into a Map:
//
//   - nil value        -> Null()
//   - slice            -> In(elements...)
//   - map[string]any   -> Cmp(op, value); the map must hold exactly one entry
//   - Cond             -> kept as is
//   - anything else    -> Eq(value)
//
// A nil input stays nil so callers can tell "no predicate" apart from
// "match everything".
func From(raw map[string]any) (Map, error) {
	if raw == nil {
		return nil, nil
	}
	m := make(Map, len(raw))
	for col, v := range raw {
		switch x := v.(type) {
		case nil:
			m[col] = Null()
		case Cond:
			m[col] = x
		case map[string]any:
			if len(x) != 1 {
				return nil, fmt.Errorf("%w: condition on %q must hold exactly one operator, got %d", ErrInvalidOperator, col, len(x))
			}
			for op, val := range x {
				m[col] = Cmp(op, val)
			}
		default:
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
				m[col] = In(v)
				continue
			}
			m[col] = Eq(v)
		}
	}
	return m, nil
}
