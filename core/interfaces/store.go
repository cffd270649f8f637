// ABOUTME: KeyValueStore abstracts durable whole-value persistence
// ABOUTME: Backends: in-memory cache, SQLite file, Redis

package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
// Backends must return it (or wrap it) for genuine misses so callers
// can tell "absent" apart from "backend failed".
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore provides durable key-value persistence. Values are
// opaque byte slices; callers own the encoding. Reads of missing keys
// return ErrKeyNotFound, writes replace the whole value.
type KeyValueStore interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
