// SPDX-License-Identifier: MIT

// Package cache persists assembled feature tables in a badger key-value store.
//
// Keys are the deterministic table keys produced by features.Key, stored
// under a fixed prefix. Values are a one-byte format version followed by the
// msgpack encoding of the features.Table.
package cache

import (
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/katalvlaran/walkfeat/features"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// formatVersion prefixes every stored value.
const formatVersion byte = 1

var keyPrefix = []byte("fv/")

var (
	// ErrBadParam is returned for unusable Options.
	ErrBadParam = errors.New("cache: bad parameter")

	// ErrBadFormat is returned for a stored value this build cannot decode.
	ErrBadFormat = errors.New("cache: unsupported value format")

	// ErrClosed is returned when a closed Store is used.
	ErrClosed = errors.New("cache: store is closed")
)

// Options configures Open.
type Options struct {
	// Dir is the database directory. Empty means an in-memory store.
	Dir string
	// ReadOnly opens an existing database without write access.
	ReadOnly bool
}

// Store is a badger-backed features.Cache. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

var _ features.Cache = (*Store)(nil)

// Open opens (creating if needed) the store described by opts.
func Open(opts Options) (*Store, error) {
	dbOpts := badger.DefaultOptions(opts.Dir)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single-writer usage
	dbOpts.Logger = nil

	// Badger for windows does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.Dir) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrBadParam, "Dir must be specified for a read-only cache")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "open cache %q", opts.Dir)
	}

	return &Store{db: db}, nil
}

func storeKey(key string) []byte {
	out := make([]byte, 0, len(keyPrefix)+len(key))
	out = append(out, keyPrefix...)
	return append(out, key...)
}

// Get loads the table stored under key. The bool is false on a miss.
func (s *Store) Get(key string) (features.Table, bool, error) {
	if s.db == nil {
		return features.Table{}, false, ErrClosed
	}

	var t features.Table
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return decode(val, &t)
		})
	})
	if err == badger.ErrKeyNotFound {
		return features.Table{}, false, nil
	}
	if err != nil {
		return features.Table{}, false, errors.Wrapf(err, "cache get %s", key)
	}

	return t, true, nil
}

// Put stores t under key, replacing any previous value.
func (s *Store) Put(key string, t features.Table) error {
	if s.db == nil {
		return ErrClosed
	}
	val, err := encode(t)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", key)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(key), val)
	})
	return errors.Wrapf(err, "cache put %s", key)
}

// Delete removes the table stored under key, if any.
func (s *Store) Delete(key string) error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storeKey(key))
	})
	return errors.Wrapf(err, "cache delete %s", key)
}

// Keys lists every stored table key in byte order.
func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			Prefix: keyPrefix,
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			keys = append(keys, string(k[len(keyPrefix):]))
		}
		return nil
	})

	return keys, errors.Wrap(err, "cache keys")
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func encode(t features.Table) ([]byte, error) {
	body, err := msgpack.Marshal(&t)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, formatVersion)
	return append(out, body...), nil
}

func decode(val []byte, t *features.Table) error {
	if len(val) == 0 || val[0] != formatVersion {
		return ErrBadFormat
	}
	return msgpack.Unmarshal(val[1:], t)
}
