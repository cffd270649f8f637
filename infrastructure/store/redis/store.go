// ABOUTME: Redis store implementation using go-redis client
// ABOUTME: Shares the collection between instances; values never expire

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"markdown-collector-api/core/interfaces"
	"markdown-collector-api/pkg/config"
)

// Store implements the KeyValueStore interface using Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis store and verifies the connection.
func NewStore(cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// Get retrieves a value from Redis
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, interfaces.ErrKeyNotFound
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis without expiration
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes a key from Redis. Deleting a missing key is not an
// error; DEL reports zero removed keys rather than redis.Nil.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
