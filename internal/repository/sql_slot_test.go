package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/prodplan/internal/db"
	"github.com/alexanderramin/prodplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLSlotRepo_ReadMissing(t *testing.T) {
	repo := NewSQLSlotRepo(testutil.NewTestDB(t), db.DialectSQLite)

	_, err := repo.Read(context.Background(), "prod_planning_data")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSQLSlotRepo_ReplaceAndRead(t *testing.T) {
	repo := NewSQLSlotRepo(testutil.NewTestDB(t), db.DialectSQLite)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, "k", []byte(`[{"id":"a"}]`)))
	got, err := repo.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// Whole-value overwrite.
	require.NoError(t, repo.Replace(ctx, "k", []byte(`[]`)))
	got, err = repo.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLSlotRepo_RevisionIncrements(t *testing.T) {
	repo := NewSQLSlotRepo(testutil.NewTestDB(t), db.DialectSQLite)
	ctx := context.Background()

	rev, err := repo.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Replace(ctx, "k", []byte(fmt.Sprintf("[%d]", i))))
	}
	rev, err = repo.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev)
}

func TestSQLSlotRepo_KeysAreIndependent(t *testing.T) {
	repo := NewSQLSlotRepo(testutil.NewTestDB(t), db.DialectSQLite)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, "a", []byte(`["a"]`)))
	require.NoError(t, repo.Replace(ctx, "b", []byte(`["b"]`)))

	a, err := repo.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(a))
}

func TestSQLSlotRepo_FailedReplaceKeepsOldValue(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	good := NewSQLSlotRepo(database, db.DialectSQLite)
	require.NoError(t, good.Replace(ctx, "k", []byte(`["old"]`)))

	failing := NewSQLSlotRepoWithUoW(database, &testutil.FaultyUoW{
		DB:         database,
		FailOnExec: 1,
		Err:        fmt.Errorf("disk full"),
	}, db.DialectSQLite)

	err := failing.Replace(ctx, "k", []byte(`["new"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	got, err := good.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["old"]`, string(got))
}

func TestSQLSlotRepo_FailedCommitKeepsOldValueAndRevision(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	good := NewSQLSlotRepo(database, db.DialectSQLite)
	require.NoError(t, good.Replace(ctx, "k", []byte(`["old"]`)))

	failing := NewSQLSlotRepoWithUoW(database, &testutil.FaultyUoW{
		DB:         database,
		FailCommit: true,
		Err:        fmt.Errorf("connection reset"),
	}, db.DialectSQLite)

	err := failing.Replace(ctx, "k", []byte(`["new"]`))
	assert.ErrorContains(t, err, "connection reset")

	got, err := good.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["old"]`, string(got))

	rev, err := good.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
}
