package testutil

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
)

// FailOnNthExecUoW runs units through a real db.SQLUnitOfWork but makes the
// FailOn-th write inside the transaction return Err. Saving an entry writes
// the entry row, then keyword rows, then grade rows, so FailOn picks which
// step of a save or import breaks. Reads are never counted.
type FailOnNthExecUoW struct {
	DB     *sqlx.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
