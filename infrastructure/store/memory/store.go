// ABOUTME: In-memory store implementation backed by go-cache
// ABOUTME: Non-durable; intended for tests and single-run usage

package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"markdown-collector-api/core/interfaces"
)

// Store implements the KeyValueStore interface in memory. Values never
// expire; the collection and settings live until the process exits.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := s.cache.Get(key)
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored, gocache.NoExpiration)
	return nil
}

// Delete removes a key from the store.
func (s *Store) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.cache.Delete(key)
	return nil
}
