package repository

import (
	"context"

	"talent-match/internal/database"
)

// Stores is the set of write-side repositories bound to one transaction.
type Stores struct {
	Profiles   ProfileRepository
	UserSkills UserSkillRepository
	Jobs       JobRepository
	Companies  CompanyRepository
}

// Transactor runs fn with stores that share a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	InTx(ctx context.Context, fn func(s Stores) error) error
}

type PostgresTransactor struct {
	db database.DB
}

func NewPostgresTransactor(db database.DB) *PostgresTransactor {
	return &PostgresTransactor{db: db}
}

func (t *PostgresTransactor) InTx(ctx context.Context, fn func(s Stores) error) error {
	return database.WithTx(ctx, t.db, func(tx database.Tx) error {
		c := conn{db: t.db, tx: tx}
		return fn(Stores{
			Profiles:   &PostgresProfileRepository{db: c},
			UserSkills: &PostgresUserSkillRepository{db: c},
			Jobs:       &PostgresJobRepository{db: c},
			Companies:  &PostgresCompanyRepository{db: c},
		})
	})
}

// conn routes statements to the pool, or to the transaction a store was
// bound to by InTx.
type conn struct {
	db database.DB
	tx database.Tx
}

func (c conn) q() database.Querier {
	if c.tx != nil {
		return c.tx
	}
	return c.db
}

func (c conn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return c.q().Exec(ctx, query, args...)
}

func (c conn) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return c.q().Query(ctx, query, args...)
}

func (c conn) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return c.q().QueryRow(ctx, query, args...)
}

// Begin opens a transaction on the pool or joins the bound one. The owner
// of a joined transaction finishes it, so Commit and Rollback do nothing.
func (c conn) Begin(ctx context.Context) (database.Tx, error) {
	if c.tx != nil {
		return joinedTx{c.tx}, nil
	}
	if c.db == nil {
		return nil, database.ErrNilDB
	}
	return c.db.Begin(ctx)
}

type joinedTx struct {
	database.Tx
}

func (joinedTx) Commit(context.Context) error   { return nil }
func (joinedTx) Rollback(context.Context) error { return nil }
