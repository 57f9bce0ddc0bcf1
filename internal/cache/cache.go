package cache

import (
	"encoding/json"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// Store is the query cache for fetched dashboard windows, the only
// state this service keeps between requests. Entries expire on their
// own; a stale or missing entry just means another upstream fetch.
type Store struct {
	db     *badger.DB
	ttl    time.Duration
	logger *logrus.Entry
}

// Open opens the cache at dir. An empty dir runs Badger in memory,
// which ephemeral deployments and tests use.
func Open(dir string, ttl time.Duration, logger *logrus.Entry) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached value for key, or false when the key is
// absent or expired. Read errors degrade to a miss.
func (s *Store) Get(key string) ([]byte, bool) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.WithError(err).Errorf("cache get %s", key)
		}
		return nil, false
	}
	return val, true
}

func (s *Store) Set(key string, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), val)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// GetJSON decodes the cached value for key into v.
func (s *Store) GetJSON(key string, v any) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(val, v); err != nil {
		s.logger.WithError(err).Errorf("cache decode %s", key)
		return false
	}
	return true
}

// SetJSON stores v under key as JSON.
func (s *Store) SetJSON(key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, val)
}
