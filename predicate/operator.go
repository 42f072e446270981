package predicate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperator is returned when a comparison uses an operator outside
// the whitelist. The offending statement is never executed.
var ErrInvalidOperator = errors.New("quickdb: operator not allowed")

// Only these operators may appear in a Cmp condition. Everything else is
// treated as hostile input.
var allowedOperators = map[string]bool{
	"=":    true,
	"!=":   true,
	"<":    true,
	">":    true,
	"<=":   true,
	">=":   true,
	"LIKE": true,
}

// NormalizeOp trims and upper-cases op, then checks it against the whitelist.
func NormalizeOp(op string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(op))
	if !allowedOperators[normalized] {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}
	return normalized, nil
}
