package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/larder/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(key string) (string, bool)) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	read := func(key string) (string, bool) {
		var val string
		err := database.QueryRow(`SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&val)
		return val, err == nil
	}
	return db.NewSQLiteUnitOfWork(database), read
}

func insert(ctx context.Context, tx db.DBTX, key, val string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, 'now')`, key, val)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, read := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insert(ctx, tx, "recipes", `{"recipes":[]}`)
	})
	require.NoError(t, err)

	val, found := read("recipes")
	assert.True(t, found)
	assert.Equal(t, `{"recipes":[]}`, val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, read := newUoW(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, insert(ctx, tx, "recipes", "{}"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := read("recipes")
	assert.False(t, found, "write must be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, read := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insert(ctx, tx, "kitchenRecipes", "{}")
			panic("kaboom")
		})
	})

	_, found := read("kitchenRecipes")
	assert.False(t, found)
}
