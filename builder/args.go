package builder

import "github.com/nikola-chen/quickdb/dialect"

// argBuilder collects bind parameters in emission order and hands out the
// matching placeholder for each one, so placeholder count and bind count
// cannot drift apart.
type argBuilder struct {
	d     dialect.Dialect
	qmark bool
	n     int
	args  []any
}

func newArgs(d dialect.Dialect) *argBuilder {
	return &argBuilder{d: d, qmark: d.Placeholder(1) == "?", n: 1}
}

func (a *argBuilder) add(v any) string {
	a.args = append(a.args, v)
	if a.qmark {
		a.n++
		return "?"
	}
	p := a.d.Placeholder(a.n)
	a.n++
	return p
}
