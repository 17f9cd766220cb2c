// Package item manages inventory items: a JSON detail record and an optional
// image URL per item, stored under "item:<id>:detail" and "item:<id>:image".
package item

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bottle-template/service/internal/kv"
)

const (
	keyPrefix     = "item:"
	allPattern    = keyPrefix + "*"
	detailPattern = keyPrefix + "*:detail"
	imageField    = "image"
)

// DetailKey returns the store key of an item's detail record.
func DetailKey(id string) string {
	return keyPrefix + id + ":detail"
}

// ImageKey returns the store key of an item's image URL.
func ImageKey(id string) string {
	return keyPrefix + id + ":image"
}

// imageKeyFor derives the image key paired with a detail key. Stored layouts
// depend on this exact substitution, so it is not rebuilt from the id.
func imageKeyFor(detailKey string) string {
	return strings.ReplaceAll(detailKey, "detail", "image")
}

// Repository handles item persistence.
type Repository struct {
	store kv.Store
}

// NewRepository creates a new Repository over store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// List returns every item's detail, ordered by detail key lexicographically,
// with an "image" field set to the stored URL when the item has one.
func (r *Repository) List(ctx context.Context) ([]json.RawMessage, error) {
	detailKeys, err := r.store.Keys(ctx, detailPattern)
	if err != nil {
		return nil, fmt.Errorf("list item keys: %w", err)
	}
	out := []json.RawMessage{}
	if len(detailKeys) == 0 {
		return out, nil
	}
	detailKeys = kv.Sorted(detailKeys)

	imageKeys := make([]string, len(detailKeys))
	for i, k := range detailKeys {
		imageKeys[i] = imageKeyFor(k)
	}

	details, err := r.store.MGet(ctx, detailKeys...)
	if err != nil {
		return nil, fmt.Errorf("fetch item details: %w", err)
	}
	images, err := r.store.MGet(ctx, imageKeys...)
	if err != nil {
		return nil, fmt.Errorf("fetch item images: %w", err)
	}

	for i, detail := range details {
		if detail == nil {
			continue
		}
		joined, err := join(detail, images[i])
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", detailKeys[i], err)
		}
		out = append(out, joined)
	}
	return out, nil
}

// join injects image into detail. Without an image, detail is returned as is.
func join(detail, image []byte) (json.RawMessage, error) {
	if image == nil {
		if !json.Valid(detail) {
			return nil, fmt.Errorf("detail is not valid JSON")
		}
		return json.RawMessage(detail), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(detail, &obj); err != nil {
		return nil, fmt.Errorf("decode detail: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("detail is not a JSON object")
	}
	url, err := marshal(string(image))
	if err != nil {
		return nil, err
	}
	obj[imageField] = url
	return marshal(obj)
}

// marshal encodes v compactly without HTML escaping, matching response.JSON.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DeleteAll removes every item key, details and images alike.
func (r *Repository) DeleteAll(ctx context.Context) error {
	keys, err := r.store.Keys(ctx, allPattern)
	if err != nil {
		return fmt.Errorf("list item keys: %w", err)
	}
	if _, err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	return nil
}

// PutDetail replaces the detail record of item id.
func (r *Repository) PutDetail(ctx context.Context, id string, data []byte) error {
	if err := r.store.Set(ctx, DetailKey(id), data); err != nil {
		return fmt.Errorf("put item %s detail: %w", id, err)
	}
	return nil
}

// SetImage records the public image URL of item id.
func (r *Repository) SetImage(ctx context.Context, id, url string) error {
	if err := r.store.Set(ctx, ImageKey(id), []byte(url)); err != nil {
		return fmt.Errorf("set item %s image: %w", id, err)
	}
	return nil
}

// Delete removes the detail and image of item id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, DetailKey(id), ImageKey(id)); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}
