package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/larder/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th ExecContext call inside a
// transaction, counting from 1. Reads pass through and are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := NewFailOnNthExec(tx, u.FailOn, u.Err)
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// FailOnNthExec wraps a DBTX so that exactly one write fails. FailOn of 1
// with a fresh wrapper makes the first write fail; FailOn <= 0 fails every write.
type FailOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func NewFailOnNthExec(inner db.DBTX, failOn int32, err error) *FailOnNthExec {
	return &FailOnNthExec{DBTX: inner, failOn: failOn, err: err}
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.failOn <= 0 || n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs reports how many writes were attempted.
func (f *FailOnNthExec) Execs() int {
	return int(f.count.Load())
}
