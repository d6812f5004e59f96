package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is absent or its TTL has elapsed.
var ErrNotFound = errors.New("session: entry not found or expired")

// Store is the ephemeral credential store: a key-value store with
// per-key TTL holding one-time exchange codes and refresh-token
// mappings. It is the single point of shared mutable state; its
// atomicity contract replaces any application-level locking.
type Store interface {
	// Set writes value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Consume atomically retrieves and deletes the value for key.
	// Of N concurrent calls on the same key, exactly one succeeds;
	// the rest return ErrNotFound. Implementations must provide this
	// through a single server-side atomic operation, never a separate
	// get followed by delete.
	Consume(ctx context.Context, key string) ([]byte, error)

	// Delete removes key and reports whether an entry existed.
	Delete(ctx context.Context, key string) (bool, error)
}
