package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlotRepo implements SlotRepo on a Redis string key. SET replaces
// the value in a single command, which is atomic on the server.
type RedisSlotRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisSlotRepo creates a RedisSlotRepo. prefix is prepended to every key.
func NewRedisSlotRepo(client *redis.Client, prefix string) *RedisSlotRepo {
	return &RedisSlotRepo{client: client, prefix: prefix}
}

func (r *RedisSlotRepo) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return data, nil
}

func (r *RedisSlotRepo) Replace(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("replacing slot %q: %w", key, err)
	}
	return nil
}
