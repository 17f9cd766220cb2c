// Package kv defines the key-value store the API persists records in.
// Values are opaque bytes under string keys; callers own the key layout.
package kv

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Store is the interface for reading and writing raw values.
type Store interface {
	// Get returns the value at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes keys and reports how many existed.
	Delete(ctx context.Context, keys ...string) (int64, error)
	// Keys lists keys matching a glob pattern ("*" wildcard). Order is unspecified.
	Keys(ctx context.Context, pattern string) ([]string, error)
	// MGet returns values in input order, nil for absent keys.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend connection.
	Close() error
}

// Sorted returns a byte-wise lexicographically sorted copy of keys,
// so "config:10" sorts before "config:2".
func Sorted(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}
