package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: failed to get %s: %v", model.ErrStorage, key, err)
	}
	return val, nil
}

// Set writes without expiration; preferences never expire.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	err := s.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("%w: failed to set %s: %v", model.ErrStorage, key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
