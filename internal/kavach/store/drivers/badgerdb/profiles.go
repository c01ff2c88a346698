// Package badgerdb holds the degraded-mode profile store. When the primary
// sqlite store rejects a profile read or write, resolution falls through to
// this embedded key/value store so a session can always be established.
package badgerdb

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
)

const profileKeyPrefix = "profile:"

type ProfileStore struct {
	db *badger.DB
}

// Open opens (or creates) the fallback store at path. An empty path opens an
// in-memory store, which tests use.
func Open(path string) (*ProfileStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &ProfileStore{db: db}, nil
}

func (s *ProfileStore) Close() error { return s.db.Close() }

func (s *ProfileStore) Get(ctx context.Context, userID string) (domain.Profile, error) {
	var p domain.Profile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(userID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return store.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *ProfileStore) Put(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(p.ID), data)
	})
}

func profileKey(userID string) []byte {
	return []byte(profileKeyPrefix + userID)
}
