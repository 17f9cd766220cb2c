package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newBadgerStore(t *testing.T) Store {
	t.Helper()
	s, err := NewBadgerStore("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Both backends must behave identically for everything the API relies on.
func TestStores(t *testing.T) {
	backends := map[string]func(*testing.T) Store{
		"redis":  newRedisStore,
		"badger": newBadgerStore,
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			t.Run("get missing", func(t *testing.T) {
				_, err := open(t).Get(context.Background(), "config:1")
				assert.ErrorIs(t, err, ErrNotFound)
			})
			t.Run("set replaces", func(t *testing.T) { testSetReplaces(t, open(t)) })
			t.Run("delete counts", func(t *testing.T) { testDeleteCounts(t, open(t)) })
			t.Run("keys glob", func(t *testing.T) { testKeysGlob(t, open(t)) })
			t.Run("mget order", func(t *testing.T) { testMGetOrder(t, open(t)) })
			t.Run("empty value", func(t *testing.T) { testEmptyValue(t, open(t)) })
			t.Run("ping", func(t *testing.T) {
				assert.NoError(t, open(t).Ping(context.Background()))
			})
		})
	}
}

func testSetReplaces(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "profile", []byte(`{"name":"a"}`)))
	require.NoError(t, s.Set(ctx, "profile", []byte(`{"name":"b"}`)))

	got, err := s.Get(ctx, "profile")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"b"}`, string(got))
}

func testDeleteCounts(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "item:1:detail", []byte(`{}`)))
	require.NoError(t, s.Set(ctx, "item:1:image", []byte(`https://img`)))

	n, err := s.Delete(ctx, "item:1:detail", "item:1:image", "item:2:detail")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.Delete(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.Get(ctx, "item:1:detail")
	assert.ErrorIs(t, err, ErrNotFound)
}

func testKeysGlob(t *testing.T, s Store) {
	ctx := context.Background()
	for _, k := range []string{"config:2", "config:10", "config:9", "item:1:detail", "item:1:image", "item:3:detail", "profile"} {
		require.NoError(t, s.Set(ctx, k, []byte("x")))
	}

	keys, err := s.Keys(ctx, "config:*")
	require.NoError(t, err)
	assert.Equal(t, []string{"config:10", "config:2", "config:9"}, Sorted(keys))

	keys, err = s.Keys(ctx, "item:*:detail")
	require.NoError(t, err)
	assert.Equal(t, []string{"item:1:detail", "item:3:detail"}, Sorted(keys))

	keys, err = s.Keys(ctx, "item:*")
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	keys, err = s.Keys(ctx, "nothing:*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func testMGetOrder(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "c", []byte("3")))

	vals, err := s.MGet(ctx, "c", "b", "a")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, "3", string(vals[0]))
	assert.Nil(t, vals[1])
	assert.Equal(t, "1", string(vals[2]))
}

// An empty value is present, not absent.
func testEmptyValue(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "config:1", []byte{}))

	got, err := s.Get(ctx, "config:1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	vals, err := s.MGet(ctx, "config:1", "config:2")
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.NotNil(t, vals[0])
	assert.Empty(t, vals[0])
	assert.Nil(t, vals[1])
}

func TestSortedIsLexicographic(t *testing.T) {
	in := []string{"config:9", "config:2", "config:10", "config:30", "config:1"}

	out := Sorted(in)

	assert.Equal(t, []string{"config:1", "config:10", "config:2", "config:30", "config:9"}, out)
	assert.Equal(t, "config:9", in[0], "input must not be reordered")
}

func TestLiteralPrefix(t *testing.T) {
	assert.Equal(t, "config:", literalPrefix("config:*"))
	assert.Equal(t, "item:", literalPrefix("item:*:detail"))
	assert.Equal(t, "profile", literalPrefix("profile"))
}
