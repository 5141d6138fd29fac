package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/focusflow/internal/db"
)

// FailOnNthExec wraps a DBTX and injects an error on the Nth ExecContext
// call. This lets tests stop a multi-append operation at a precise point.
//
// ExecContext calls are counted starting at 1. QueryContext and
// QueryRowContext are not counted (reads pass through normally).
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Calls reports how many ExecContext calls have been made.
func (f *FailOnNthExec) Calls() int {
	return int(f.count.Load())
}

// FailingQueries wraps a DBTX and fails every QueryContext call, simulating
// an unreachable store on reads.
type FailingQueries struct {
	db.DBTX
	Err error
}

func (f *FailingQueries) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, f.Err
}
