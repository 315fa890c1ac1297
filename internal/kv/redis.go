package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisBackend struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedis(redisClient *redis.Client) Backend {
	return &redisBackend{
		redisClient: redisClient,
		keyPrefix:   "mbs:",
	}
}

func (r *redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

func (r *redisBackend) Set(ctx context.Context, key string, value []byte) error {
	err := r.redisClient.Set(ctx, r.keyPrefix+key, value, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *redisBackend) Close() error {
	return r.redisClient.Close()
}
