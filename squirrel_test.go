package pgqb_test

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/leporo/pgqb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Statements are expected to match ones squirrel builds with $N placeholders.

func TestSquirrelSelect(t *testing.T) {
	expSQL, expArgs, err := sq.Select("id", "email").
		From("users").
		Where(sq.Eq{"password": "123456"}).
		Where(sq.NotEq{"role": "system"}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	sql, args := pgqb.From("users").
		Select("id", "email").
		WhereEq("password", "123456").
		WhereNe("role", "system").
		Build()
	assert.Equal(t, expSQL, sql)
	assert.Equal(t, expArgs, args)
}

func TestSquirrelSelectAllClauses(t *testing.T) {
	expSQL, expArgs, err := sq.Select("u.name", "count(*)").
		From("users u").
		InnerJoin("orders o ON o.user_id = u.id").
		LeftJoin("phones p ON p.user_id = u.id").
		Where(sq.Eq{"u.active": true}).
		Where("u.deleted_at IS NULL").
		GroupBy("u.name").
		OrderBy("u.name DESC").
		Limit(10).
		Offset(30).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	sql, args := pgqb.From("users u").
		Select("u.name", "count(*)").
		InnerJoin("orders o", "o.user_id = u.id").
		LeftJoin("phones p", "p.user_id = u.id").
		WhereEq("u.active", true).
		Where("u.deleted_at IS NULL").
		GroupBy("u.name").
		OrderBy(pgqb.Desc("u.name")).
		Limit(10).
		Offset(30).
		Build()
	assert.Equal(t, expSQL, sql)
	assert.Equal(t, expArgs, args)
}

func TestSquirrelUpdate(t *testing.T) {
	expSQL, expArgs, err := sq.Update("users").
		Set("name", "rick").
		Set("email", "rick@example.com").
		Where(sq.Eq{"id": 42}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	sql, args := pgqb.Update("users").
		Set("name", "rick").
		Set("email", "rick@example.com").
		WhereEq("id", 42).
		Build()
	assert.Equal(t, expSQL, sql)
	assert.Equal(t, expArgs, args)
}
