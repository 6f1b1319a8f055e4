// Package store defines the permanent storage service.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.ked.sh/pkg/logutil"
	. "src.ked.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for editor state. It is an
// implementation of the storedefs.Store interface.
type DBStore interface {
	Store
	Close() error
}

// Bucket names.
const (
	bucketCmd = "cmd"
	bucketPos = "pos"
)

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{
			// Give up when another ked instance holds the lock.
			Timeout: 1 * time.Second,
		})
	return db, err
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := dbWithDefaultOptions(dbname)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close closes the store.
func (s *dbStore) Close() error {
	return s.db.Close()
}
