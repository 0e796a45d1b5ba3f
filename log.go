package pgqb

import (
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

/*
SetLogger sets a logger to trace executed statements.

Statements are logged at debug level before being passed to a driver:

	pgqb.SetLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel))

Do not call SetLogger while statements are being executed.
*/
func SetLogger(l zerolog.Logger) {
	logger = l
}

func logStmt(sql string, args []interface{}) {
	logger.Debug().
		Str("sql", sql).
		Int("args", len(args)).
		Msg("Executing statement")
}
