package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisSlot(t *testing.T) (*RedisSlotRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSlotRepo(client, "prodplan:"), mr
}

func TestRedisSlotRepo_ReadMissing(t *testing.T) {
	repo, _ := newTestRedisSlot(t)

	_, err := repo.Read(context.Background(), "prod_planning_data")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRedisSlotRepo_ReplaceAndRead(t *testing.T) {
	repo, mr := newTestRedisSlot(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, "prod_planning_data", []byte(`[{"id":"x"}]`)))

	raw, err := mr.Get("prodplan:prod_planning_data")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, raw)

	got, err := repo.Read(ctx, "prod_planning_data")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(got))
}

func TestRedisSlotRepo_ServerDown(t *testing.T) {
	repo, mr := newTestRedisSlot(t)
	mr.Close()

	_, err := repo.Read(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotNotFound)
}
