package engine

import (
	"strings"

	"github.com/nikola-chen/quickdb/builder"
)

// SelectOption adjusts a SELECT beyond its table and predicate.
type SelectOption func(*builder.SelectOpts)

// Columns projects specific columns instead of SELECT *.
func Columns(cols ...string) SelectOption {
	return func(o *builder.SelectOpts) {
		o.Columns = append(o.Columns, cols...)
	}
}

// OrderBy appends an ORDER BY term. dir is "ASC" or "DESC" (case-insensitive);
// anything else falls back to ASC.
func OrderBy(column, dir string) SelectOption {
	return func(o *builder.SelectOpts) {
		desc := strings.EqualFold(strings.TrimSpace(dir), "DESC")
		o.Order = append(o.Order, builder.Order{Column: column, Desc: desc})
	}
}

// Limit caps the number of returned rows. SelectOne overrides it with 1.
func Limit(n int) SelectOption {
	return func(o *builder.SelectOpts) {
		if n < 0 {
			n = 0
		}
		o.Limit = n
	}
}

// Offset skips rows; it takes effect only together with a limit.
func Offset(n int) SelectOption {
	return func(o *builder.SelectOpts) {
		if n < 0 {
			n = 0
		}
		o.Offset = n
	}
}

func applySelectOptions(opts []SelectOption) builder.SelectOpts {
	var o builder.SelectOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
