// Package dialect abstracts the per-database differences the builder cares
// about: how identifiers are quoted and how bind placeholders are numbered.
package dialect

import (
	"strings"
	"sync"
)

// Dialect describes one database flavor.
type Dialect interface {
	// Name returns the name of the dialect.
	Name() string
	// Placeholder returns the placeholder string for the n-th argument (1-based).
	Placeholder(n int) string
	// QuoteIdent quotes an identifier so the database treats it as a literal
	// name regardless of reserved words, case, or embedded quote characters.
	QuoteIdent(ident string) string
}

var (
	mu       sync.RWMutex
	dialects = map[string]Dialect{}
)

// Register registers a dialect under a driver name.
func Register(driverName string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[driverName] = d
}

// Get returns the dialect registered for a driver.
func Get(driverName string) (Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[driverName]
	return d, ok
}

// MustGet returns the dialect for a driver or panics if it is not registered.
func MustGet(driverName string) Dialect {
	d, ok := Get(driverName)
	if !ok || d == nil {
		panic("quickdb: unsupported dialect: " + driverName)
	}
	return d
}

// maxCachedIdentLen bounds the identifiers worth caching; longer ones are
// quoted on every call to keep the caches small.
const maxCachedIdentLen = 64

// quoteWith wraps ident in the quote byte q, doubling embedded occurrences of
// q. Results for short identifiers are memoized in cache.
func quoteWith(ident string, q byte, cache *sync.Map) string {
	if ident == "" {
		return string([]byte{q, q})
	}
	if cached, ok := cache.Load(ident); ok {
		return cached.(string)
	}

	var b strings.Builder
	b.Grow(len(ident) + 2)
	b.WriteByte(q)
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c == q {
			b.WriteByte(q)
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)

	quoted := b.String()
	if len(ident) <= maxCachedIdentLen {
		cache.Store(ident, quoted)
	}
	return quoted
}
