package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotRepo_ReadReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySlotRepo()

	_, err := repo.Read(ctx, "k")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, repo.Replace(ctx, "k", []byte(`[1]`)))
	got, err := repo.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
	assert.Equal(t, 1, repo.Writes())

	// Returned bytes are a copy.
	got[0] = 'x'
	again, _ := repo.Read(ctx, "k")
	assert.Equal(t, `[1]`, string(again))
}

func TestMemorySlotRepo_ReplaceErr(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySlotRepo()
	repo.Seed("k", []byte(`[]`))
	repo.ReplaceErr = errors.New("disk full")

	assert.Error(t, repo.Replace(ctx, "k", []byte(`[2]`)))
	got, err := repo.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, 0, repo.Writes())
}

func TestMemorySlotRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemorySlotRepo()
	assert.ErrorIs(t, repo.Replace(ctx, "k", nil), context.Canceled)
}
