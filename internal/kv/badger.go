package kv

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"
)

// BadgerStore implements Store on an embedded BadgerDB, for single-node
// deployments that do not run a Redis server.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens BadgerDB in dir. An empty dir opens an in-memory
// database. It is up to the caller to Close the store.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	log.WithField("dir", dir).Info("opened badger store")
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		// item.Value is only valid inside the transaction. A non-nil dst keeps
		// an empty value distinct from an absent key.
		val, err = item.ValueCopy([]byte{})
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %q: %w", key, err)
	}
	return val, nil
}

func (s *BadgerStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) Delete(_ context.Context, keys ...string) (int64, error) {
	var n int64
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			_, err := txn.Get([]byte(k))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("badger delete: %w", err)
	}
	return n, nil
}

// Keys scans the literal prefix of pattern and filters with glob matching.
func (s *BadgerStore) Keys(_ context.Context, pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("badger keys %q: %w", pattern, err)
	}
	prefix := []byte(literalPrefix(pattern))

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			k := string(it.Item().Key())
			if ok, _ := path.Match(pattern, k); ok {
				keys = append(keys, k)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger keys %q: %w", pattern, err)
	}
	return keys, nil
}

func (s *BadgerStore) MGet(_ context.Context, keys ...string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	err := s.db.View(func(txn *badger.Txn) error {
		for i, k := range keys {
			item, err := txn.Get([]byte(k))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if out[i], err = item.ValueCopy([]byte{}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger mget: %w", err)
	}
	return out, nil
}

func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database is closed")
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// literalPrefix returns the part of a glob pattern before its first meta character.
func literalPrefix(pattern string) string {
	if i := strings.IndexAny(pattern, `*?[\`); i >= 0 {
		return pattern[:i]
	}
	return pattern
}
