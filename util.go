package pgqb

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

var (
	space = []byte{' '}
	star  = []byte{'*'}
)

// placeholder returns a numbered PostgreSQL placeholder.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// writeList copies items into buf separated with sep.
func writeList(buf *bytebufferpool.ByteBuffer, items []string, sep string) {
	for i, item := range items {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(item)
	}
}

// writeClause appends a clause to a statement being built.
// Nothing is written if there are no items.
// An empty clause keyword writes the items alone.
func writeClause(buf *bytebufferpool.ByteBuffer, clause string, items []string, sep string) {
	if len(items) == 0 {
		return
	}
	buf.Write(space)
	if clause != "" {
		buf.WriteString(clause)
		buf.Write(space)
	}
	writeList(buf, items, sep)
}
