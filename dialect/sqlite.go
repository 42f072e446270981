package dialect

import "sync"

var sqliteQuoteCache sync.Map

// SQLite quotes identifiers with double quotes like PostgreSQL but numbers
// placeholders with ? like MySQL.
type sqliteDialect struct{}

func (d sqliteDialect) Name() string { return "sqlite3" }

func (d sqliteDialect) Placeholder(n int) string { return "?" }

func (d sqliteDialect) QuoteIdent(ident string) string {
	return quoteWith(ident, '"', &sqliteQuoteCache)
}

func init() {
	Register("sqlite3", sqliteDialect{})
	Register("sqlite", sqliteDialect{})
}
