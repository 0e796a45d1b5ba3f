package pgqb

import (
	"context"
	"database/sql"
)

// Executor performs SQL queries.
// It's an interface accepted by Query, QueryRow and Exec methods.
// Both sql.DB, sql.Conn and sql.Tx can be passed as executor.
type Executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ContextExecutor performs SQL queries with context.
// It's an interface accepted by Query, QueryRow and Exec methods.
// Both sql.DB, sql.Conn and sql.Tx can be passed as context executor.
type ContextExecutor interface {
	Executor

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Query executes the statement.
// For every row of a returned dataset it calls a handler function.
func (q *SelectBuilder) Query(ctx context.Context, db Executor, handler func(rows *sql.Rows) error) error {
	var (
		rows *sql.Rows
		err  error
	)
	s, args := q.Build()
	logStmt(s, args)
	// Fetch rows
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		rows, err = ctxExecutor.QueryContext(ctx, s, args...)
	} else {
		rows, err = db.Query(s, args...)
	}
	if err != nil {
		return err
	}

	// Iterate through rows of returned dataset
	for rows.Next() {
		err = handler(rows)
		if err != nil {
			break
		}
	}
	// Check for errors during rows "Close".
	if closeErr := rows.Close(); closeErr != nil {
		return closeErr
	}

	// Check for handler error.
	if err != nil {
		return err
	}

	// Check for errors during row iteration.
	return rows.Err()
}

// QueryAndClose executes the statement and releases the builder to a pool.
// Do not call any builder methods after this call.
func (q *SelectBuilder) QueryAndClose(ctx context.Context, db Executor, handler func(rows *sql.Rows) error) error {
	err := q.Query(ctx, db, handler)
	q.Close()
	return err
}

// QueryRow executes the statement and scans the first row
// of a returned dataset to dest.
func (q *SelectBuilder) QueryRow(ctx context.Context, db Executor, dest ...interface{}) error {
	var row *sql.Row
	s, args := q.Build()
	logStmt(s, args)
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		row = ctxExecutor.QueryRowContext(ctx, s, args...)
	} else {
		row = db.QueryRow(s, args...)
	}

	return row.Scan(dest...)
}

// QueryRowAndClose executes the statement, scans the first row to dest
// and releases the builder to a pool.
//
// Do not call any builder methods after this call.
func (q *SelectBuilder) QueryRowAndClose(ctx context.Context, db Executor, dest ...interface{}) error {
	err := q.QueryRow(ctx, db, dest...)
	q.Close()
	return err
}

// Exec executes the statement.
func (q *UpdateBuilder) Exec(ctx context.Context, db Executor) (sql.Result, error) {
	s, args := q.Build()
	logStmt(s, args)
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		return ctxExecutor.ExecContext(ctx, s, args...)
	}

	return db.Exec(s, args...)
}

// ExecAndClose executes the statement and releases the builder to a pool.
//
// Do not call any builder methods after this call.
func (q *UpdateBuilder) ExecAndClose(ctx context.Context, db Executor) (sql.Result, error) {
	res, err := q.Exec(ctx, db)
	q.Close()
	return res, err
}
