package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// badgerLogger badger 의 Warningf 를 zap 의 Warnf 로 잇는다.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

type badgerStore struct {
	db *badger.DB
}

func openBadger(path string, logger *zap.Logger) (*badgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(badgerLogger{logger.Sugar()}).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", path)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Put(run Run) error {
	key, value, err := encodeRun(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *badgerStore) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				run, err := decodeRun(item.Key(), v)
				if err != nil {
					return err
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sortRuns(runs), err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
