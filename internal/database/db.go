package database

import (
	"context"
	"errors"
	"fmt"
)

var ErrNilDB = errors.New("nil db")

// DB is the narrow query surface the stores and tooling depend on. Rows and
// Row are satisfied by pgx values directly.
type DB interface {
	Querier
	Beginner
	Ping(ctx context.Context) error
	Close() error
}

type Beginner interface {
	Begin(ctx context.Context) (Tx, error)
}

type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

// WithTx runs fn inside one transaction and commits when fn returns nil.
// The rollback after a commit is a no-op.
func WithTx(ctx context.Context, db Beginner, fn func(tx Tx) error) error {
	if db == nil {
		return ErrNilDB
	}
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
