package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/prodplan/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertSlot = `INSERT INTO slots (slot_key, value, revision, updated_at) VALUES (?, ?, 1, '2024-06-10T12:00:00Z')`

func newUoW(t *testing.T) (*sql.DB, *db.SQLUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLUnitOfWork(database)
}

func slotValue(t *testing.T, database *sql.DB, key string) (string, bool) {
	t.Helper()
	var v string
	err := database.QueryRow(`SELECT value FROM slots WHERE slot_key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertSlot, "k1", "[]")
		return err
	})
	require.NoError(t, err)

	v, ok := slotValue(t, database, "k1")
	assert.True(t, ok, "row should exist after commit")
	assert.Equal(t, "[]", v)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := newUoW(t)
	failure := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSlot, "k2", "[]"); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	_, ok := slotValue(t, database, "k2")
	assert.False(t, ok, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertSlot, "k3", "[]")
			panic("boom")
		})
	})

	_, ok := slotValue(t, database, "k3")
	assert.False(t, ok, "row should not exist after panic rollback")

	// The single in-memory connection must be usable again.
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertSlot, "k4", "[]")
		return err
	}))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
