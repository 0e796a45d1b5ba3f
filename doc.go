// Package pgqb is a PostgreSQL query string builder.
/*

Query String Builder

pgqb builders provide a way to:
- Assemble SELECT and UPDATE statements from column names, conditions
  and values,
- Number placeholders for PostgreSQL ($1, $2, etc) in the order values
  are added,
- Collect the values to be passed to database driver for execution.

	q := pgqb.From("users").
		Select("id", "email").
		WhereEq("password", "123456")
	sql, args := q.Build()
	// SELECT id, email FROM users WHERE password = $1
	// [123456]

Only values are passed as placeholders. Table and column names are written
to the statement as is and must never come from user input.
*/
package pgqb
