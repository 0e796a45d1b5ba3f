package pgqb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", placeholder(1))
	assert.Equal(t, "$42", placeholder(42))
}

func TestWriteClause(t *testing.T) {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString("SELECT *")
	writeClause(buf, "WHERE", nil, " AND ")
	assert.Equal(t, "SELECT *", buf.String())

	writeClause(buf, "WHERE", []string{"a = $1", "b = $2"}, " AND ")
	assert.Equal(t, "SELECT * WHERE a = $1 AND b = $2", buf.String())

	writeClause(buf, "", []string{"LIMIT 1"}, " ")
	assert.Equal(t, "SELECT * WHERE a = $1 AND b = $2 LIMIT 1", buf.String())
}

func TestFilterAddParam(t *testing.T) {
	var f filter
	f.sql = "cached"
	assert.Equal(t, 1, f.AddParam("a"))
	assert.Equal(t, 2, f.AddParam(nil))
	assert.Equal(t, "", f.sql)
	assert.Equal(t, []interface{}{"a", nil}, f.Args())
}
