package dialect

import (
	"strconv"
	"sync"
)

// Small positional placeholders are precomputed; queries rarely carry more
// than a handful of binds.
var postgresPlaceholders = [...]string{
	"$1", "$2", "$3", "$4", "$5", "$6", "$7", "$8", "$9", "$10",
	"$11", "$12", "$13", "$14", "$15", "$16", "$17", "$18", "$19", "$20",
}

var postgresQuoteCache sync.Map

type postgresDialect struct{}

func (d postgresDialect) Name() string { return "postgres" }

func (d postgresDialect) Placeholder(n int) string {
	if n > 0 && n <= len(postgresPlaceholders) {
		return postgresPlaceholders[n-1]
	}
	return "$" + strconv.Itoa(n)
}

func (d postgresDialect) QuoteIdent(ident string) string {
	return quoteWith(ident, '"', &postgresQuoteCache)
}

func init() {
	Register("postgres", postgresDialect{})
	Register("postgresql", postgresDialect{})
}
