package kvdb

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type boltStore struct {
	db *bbolt.DB
}

func openBolt(path string) (*boltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bbolt bucket")
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Put(run Run) error {
	key, value, err := encodeRun(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, value)
	})
}

func (s *boltStore) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			run, err := decodeRun(k, v)
			if err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	return sortRuns(runs), err
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
