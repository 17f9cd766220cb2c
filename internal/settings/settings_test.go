package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bottle-template/service/internal/kv"
)

func TestVerifyID(t *testing.T) {
	for i := 1; i <= 30; i++ {
		assert.True(t, VerifyID(strconv.Itoa(i)), i)
	}
	for _, s := range []string{"", "0", "31", "99", "007", "01", "-1", "+1", " 1", "1 ", "1a", "a1", "1.0", "3O", "١"} {
		assert.False(t, VerifyID(s), "%q", s)
	}
}

func newRepo(t *testing.T) (*Repository, kv.Store) {
	t.Helper()
	store, err := kv.NewBadgerStore("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewRepository(store), store
}

func TestListIsLexicographic(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	for _, id := range []string{"2", "10", "9"} {
		require.NoError(t, repo.Put(ctx, id, []byte(`{"id":`+id+`}`)))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.JSONEq(t, `{"id":10}`, string(entries[0]))
	assert.JSONEq(t, `{"id":2}`, string(entries[1]))
	assert.JSONEq(t, `{"id":9}`, string(entries[2]))
}

func TestListEmptyIsArray(t *testing.T) {
	repo, _ := newRepo(t)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)

	b, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestListRejectsInvalidJSON(t *testing.T) {
	repo, store := newRepo(t)
	require.NoError(t, store.Set(context.Background(), "config:4", []byte("not json")))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestListRejectsEmptyValue(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Put(context.Background(), "5", []byte{}))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestDeleteAllLeavesOtherKeys(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, "1", []byte(`{}`)))
	require.NoError(t, repo.Put(ctx, "30", []byte(`{}`)))
	require.NoError(t, store.Set(ctx, "profile", []byte(`{}`)))

	require.NoError(t, repo.DeleteAll(ctx))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = store.Get(ctx, "profile")
	assert.NoError(t, err)
}

func TestGetMissing(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Get(context.Background(), "5")
	assert.ErrorIs(t, err, ErrNotFound)
}
