// Package storage persists cart aggregates as JSON blobs in Redis, one value
// per cart key. Whatever shape was written is read back verbatim; there is no
// migration layer.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"go-saree-api/internal/cart"
)

const keyPrefix = "cart:"

type RedisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(client *redis.Client) *RedisCartStorage {
	return &RedisCartStorage{client: client}
}

func (s *RedisCartStorage) Load(ctx context.Context, key string) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisCartStorage) Save(ctx context.Context, key string, c *cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+key, raw, 0).Err()
}

func (s *RedisCartStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
