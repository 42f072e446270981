package dialect

import "sync"

var mysqlQuoteCache sync.Map

type mysqlDialect struct{}

func (d mysqlDialect) Name() string { return "mysql" }

func (d mysqlDialect) Placeholder(n int) string { return "?" }

func (d mysqlDialect) QuoteIdent(ident string) string {
	return quoteWith(ident, '`', &mysqlQuoteCache)
}

func init() {
	Register("mysql", mysqlDialect{})
}
