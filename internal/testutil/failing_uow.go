package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/prodplan/internal/db"
)

// FaultyUoW is a UnitOfWork that injects Err into a transaction, either on
// the FailOnExec-th ExecContext call (counted from 1 per transaction) or,
// with FailCommit, in place of the commit. The transaction is always rolled
// back when a fault fires. Reads pass through untouched.
type FaultyUoW struct {
	DB         *sql.DB
	FailOnExec int32
	FailCommit bool
	Err        error
}

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &faultyExec{DBTX: tx, failOn: u.FailOnExec, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	if u.FailCommit {
		_ = tx.Rollback()
		return fmt.Errorf("committing transaction: %w", u.Err)
	}
	return tx.Commit()
}

type faultyExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *faultyExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if n := f.count.Add(1); f.failOn > 0 && n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
