// Package seqstore persists named scalar lists in a bolt database, using
// the binary snapshot format of package scalarseq. It is the durable
// storage collaborator of the list core: one bucket, list names as keys,
// snapshots as values.
package seqstore

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/scalarseq/scalarseq"
)

// ErrNoList is returned by Get when no list with the given name is stored.
var ErrNoList = errors.New("no such list")

var bucketLists = []byte("lists")

// Store is a durable store of named scalar lists. It is safe for
// concurrent use; the transactional guarantees are bolt's.
type Store struct {
	db     *bolt.DB
	logger zerolog.Logger
}

// Open opens (creating if necessary) the store at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLists)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug().Str("path", path).Msg("opened list store")
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.logger.Debug().Msg("closing list store")
	return s.db.Close()
}

// Del removes the list stored under name, if any.
func (s *Store) Del(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).Delete([]byte(name))
	})
}

// Names returns the names of all stored lists, in key order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Put stores a snapshot of l under name, replacing any previous list with
// that name. Put and Get are functions rather than methods because Go
// methods cannot introduce type parameters.
func Put[T scalarseq.Scalar](s *Store, name string, l *scalarseq.ArrayList[T]) error {
	var buf bytes.Buffer
	if err := l.Snapshot(&buf); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).Put([]byte(name), buf.Bytes())
	})
	if err != nil {
		return err
	}
	s.logger.Debug().Str("name", name).Int("len", l.Len()).Msg("stored list")
	return nil
}

// Get loads the list stored under name. It returns ErrNoList when the name
// is absent and fails if the snapshot does not decode as a list of T.
func Get[T scalarseq.Scalar](s *Store, name string) (*scalarseq.ArrayList[T], error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketLists).Get([]byte(name))
		if v == nil {
			return ErrNoList
		}
		// bolt-owned memory is only valid inside the transaction
		data = append(data, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scalarseq.RestoreArrayList[T](bytes.NewReader(data))
}
