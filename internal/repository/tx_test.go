package repository

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type recordingTx struct {
	execs     []string
	commits   int
	rollbacks int
}

func (t *recordingTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.execs = append(t.execs, query)
	return 1, nil
}

func (t *recordingTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not supported")
}

func (t *recordingTx) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (t *recordingTx) Commit(context.Context) error {
	t.commits++
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	t.rollbacks++
	return nil
}

type recordingDB struct {
	recordingTx
	begun []*recordingTx
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	tx := &recordingTx{}
	d.begun = append(d.begun, tx)
	return tx, nil
}

func TestTransactor_SharesOneTransaction(t *testing.T) {
	db := &recordingDB{}
	ctx := context.Background()
	id := uuid.New()

	err := NewPostgresTransactor(db).InTx(ctx, func(s Stores) error {
		// opens its own transaction, which joins the outer one
		if err := s.UserSkills.DeleteUserSkill(ctx, id, uuid.New()); err != nil {
			return err
		}
		return s.Jobs.UpdateCompleteness(ctx, id, 40)
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.begun) != 1 {
		t.Fatalf("expected one transaction, got %d", len(db.begun))
	}
	tx := db.begun[0]
	if len(tx.execs) != 3 || len(db.execs) != 0 {
		t.Fatalf("expected 3 statements on the transaction and none on the pool, got %d and %d", len(tx.execs), len(db.execs))
	}
	if tx.commits != 1 {
		t.Fatalf("expected a single commit, got %d", tx.commits)
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := &recordingDB{}
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewPostgresTransactor(db).InTx(ctx, func(s Stores) error {
		if err := s.Profiles.UpdateCompleteness(ctx, uuid.New(), 10); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	tx := db.begun[0]
	if tx.commits != 0 || tx.rollbacks == 0 {
		t.Fatalf("expected rollback without commit, got commits=%d rollbacks=%d", tx.commits, tx.rollbacks)
	}
}

func TestConn_OutsideTransactionUsesPool(t *testing.T) {
	db := &recordingDB{}
	if err := NewPostgresCompanyRepository(db).UpdateCompleteness(context.Background(), uuid.New(), 55); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.execs) != 1 || len(db.begun) != 0 {
		t.Fatalf("expected one pool statement and no transaction, got execs=%d begun=%d", len(db.execs), len(db.begun))
	}
}

func TestLimitArg(t *testing.T) {
	if limitArg(0) != nil || limitArg(-3) != nil {
		t.Fatalf("expected no limit for non-positive values")
	}
	if got := limitArg(5); got == nil || *got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}
