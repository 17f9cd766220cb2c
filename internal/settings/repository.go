// Package settings manages numbered configuration entries stored under
// "config:<id>" keys.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bottle-template/service/internal/kv"
)

const (
	keyPrefix  = "config:"
	keyPattern = keyPrefix + "*"
)

// ErrNotFound is returned when a config entry does not exist.
var ErrNotFound = errors.New("config entry not found")

// Key returns the store key for the entry with the given id.
func Key(id string) string {
	return keyPrefix + id
}

// Repository handles config entry persistence.
type Repository struct {
	store kv.Store
}

// NewRepository creates a new Repository over store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// List returns every entry as JSON, ordered by key lexicographically
// ("config:10" before "config:2"). Entries deleted between enumeration and
// fetch are skipped.
func (r *Repository) List(ctx context.Context) ([]json.RawMessage, error) {
	keys, err := r.store.Keys(ctx, keyPattern)
	if err != nil {
		return nil, fmt.Errorf("list config keys: %w", err)
	}
	out := []json.RawMessage{}
	if len(keys) == 0 {
		return out, nil
	}
	keys = kv.Sorted(keys)

	vals, err := r.store.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("fetch config entries: %w", err)
	}
	for i, v := range vals {
		if v == nil {
			continue
		}
		if !json.Valid(v) {
			return nil, fmt.Errorf("config entry %q is not valid JSON", keys[i])
		}
		out = append(out, json.RawMessage(v))
	}
	return out, nil
}

// DeleteAll removes every config entry.
func (r *Repository) DeleteAll(ctx context.Context) error {
	keys, err := r.store.Keys(ctx, keyPattern)
	if err != nil {
		return fmt.Errorf("list config keys: %w", err)
	}
	if _, err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("delete config entries: %w", err)
	}
	return nil
}

// Get returns the stored bytes for id.
func (r *Repository) Get(ctx context.Context, id string) ([]byte, error) {
	b, err := r.store.Get(ctx, Key(id))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get config %s: %w", id, err)
	}
	return b, nil
}

// Put replaces the entry for id with data.
func (r *Repository) Put(ctx context.Context, id string, data []byte) error {
	if err := r.store.Set(ctx, Key(id), data); err != nil {
		return fmt.Errorf("put config %s: %w", id, err)
	}
	return nil
}

// Delete removes the entry for id. Deleting a missing entry is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, Key(id)); err != nil {
		return fmt.Errorf("delete config %s: %w", id, err)
	}
	return nil
}
