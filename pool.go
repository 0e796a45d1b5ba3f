package pgqb

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

var (
	bufPool    bytebufferpool.Pool
	selectPool = sync.Pool{New: newSelect}
	updatePool = sync.Pool{New: newUpdate}
)

func getBuffer() *bytebufferpool.ByteBuffer {
	return bufPool.Get()
}

func putBuffer(buf *bytebufferpool.ByteBuffer) {
	bufPool.Put(buf)
}

func newSelect() interface{} {
	return &SelectBuilder{
		columns: make([]string, 0, 10),
	}
}

func getSelect(table string) *SelectBuilder {
	q := selectPool.Get().(*SelectBuilder)
	q.table = table
	return q
}

func reuseSelect(q *SelectBuilder) {
	q.reset()
	selectPool.Put(q)
}

func newUpdate() interface{} {
	return &UpdateBuilder{
		sets: make([]string, 0, 10),
	}
}

func getUpdate(table string) *UpdateBuilder {
	q := updatePool.Get().(*UpdateBuilder)
	q.table = table
	return q
}

func reuseUpdate(q *UpdateBuilder) {
	q.reset()
	updatePool.Put(q)
}
