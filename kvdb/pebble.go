package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(path string, logger *zap.Logger) (*pebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{Logger: logger.Sugar()})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", path)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(run Run) error {
	key, value, err := encodeRun(run)
	if err != nil {
		return err
	}
	return s.db.Set(key, value, pebble.Sync)
}

func (s *pebbleStore) List() ([]Run, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "pebble iterator")
	}
	var runs []Run
	for it.First(); it.Valid(); it.Next() {
		run, err := decodeRun(it.Key(), it.Value())
		if err != nil {
			it.Close()
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := it.Close(); err != nil {
		return nil, errors.Wrap(err, "close pebble iterator")
	}
	return sortRuns(runs), nil
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
