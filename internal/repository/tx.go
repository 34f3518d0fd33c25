package repository

import "context"

// ErrMsgTxClosed is the message the driver returns when rolling back a
// transaction that was already committed or rolled back
const ErrMsgTxClosed = "tx is closed"

// Tx is a unit of work. Every service operation opens exactly one, performs
// its reads and writes through it, and commits or rolls back.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
