package repokit

import (
	"context"
	"errors"
	"testing"

	"lipi/internal/platform/store"
)

// recordQ records statements issued inside a tx
type recordQ struct {
	sqls []string
}

func (r *recordQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	r.sqls = append(r.sqls, sql)
	return nil, nil
}

func (r *recordQ) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	r.sqls = append(r.sqls, sql)
	return nil, nil
}

func (r *recordQ) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	r.sqls = append(r.sqls, sql)
	return nil
}

type recordTx struct {
	q       *recordQ
	txCalls int
}

func (t *recordTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	t.txCalls++
	return fn(t.q)
}

func (t *recordTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return t.q.Exec(ctx, sql, args...)
}

func (t *recordTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return t.q.Query(ctx, sql, args...)
}

func (t *recordTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	return t.q.QueryRow(ctx, sql, args...)
}

func TestWithBeginHooksRunBeforeFn(t *testing.T) {
	inner := &recordTx{q: &recordQ{}}

	timeout := func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "SET LOCAL statement_timeout = '5s'")
		return err
	}

	tx := WithBeginHooks(inner, timeout)
	err := tx.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "INSERT INTO entries ...")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if inner.txCalls != 1 {
		t.Fatalf("inner Tx calls = %d, want 1", inner.txCalls)
	}
	want := []string{"SET LOCAL statement_timeout = '5s'", "INSERT INTO entries ..."}
	if len(inner.q.sqls) != 2 || inner.q.sqls[0] != want[0] || inner.q.sqls[1] != want[1] {
		t.Fatalf("statement order = %v, want %v", inner.q.sqls, want)
	}
}

func TestWithBeginHooksShortCircuit(t *testing.T) {
	inner := &recordTx{q: &recordQ{}}
	boom := errors.New("hook failed")

	tx := WithBeginHooks(inner, func(context.Context, Queryer) error { return boom })

	ran := false
	err := tx.Tx(context.Background(), func(Queryer) error { ran = true; return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("Tx = %v, want hook error", err)
	}
	if ran {
		t.Fatalf("fn should not run when a begin hook fails")
	}
}

func TestWithBeginHooksDelegatesQuerier(t *testing.T) {
	inner := &recordTx{q: &recordQ{}}
	tx := WithBeginHooks(inner)

	// outside a tx the wrapper is a plain passthrough
	if _, err := tx.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := tx.Query(context.Background(), "SELECT 2"); err != nil {
		t.Fatalf("Query: %v", err)
	}
	tx.QueryRow(context.Background(), "SELECT 3")

	want := []string{"SELECT 1", "SELECT 2", "SELECT 3"}
	for i, w := range want {
		if inner.q.sqls[i] != w {
			t.Fatalf("delegation order = %v, want %v", inner.q.sqls, want)
		}
	}
}
