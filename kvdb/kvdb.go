package kvdb

import (
	"encoding/binary"
	"encoding/json"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Backends 지원하는 저장소 엔진
var Backends = []string{"bbolt", "badger", "pebble"}

const keySize = 8

var bucketName = []byte("runs")

// BenchmarkResult 한 알고리즘, 한 배열 크기에 대한 측정 결과
type BenchmarkResult struct {
	Algorithm        string        `json:"algorithm"`
	Size             int           `json:"size"`
	Elements         int           `json:"elements"`
	Duration         time.Duration `json:"duration"`
	NsPerElement     float64       `json:"ns_per_element"`
	NsPerElementLog2 float64       `json:"ns_per_element_log2"`
	MemoryUsage      uint64        `json:"memory_usage_bytes"`
	Verified         bool          `json:"verified"`
}

// Run 벤치마크 한 번 실행의 기록. ID 는 시작 시각(UnixNano).
type Run struct {
	ID        uint64            `json:"id"`
	StartedAt time.Time         `json:"started_at"`
	Label     string            `json:"label"`
	Unchecked bool              `json:"unchecked"`
	GoVersion string            `json:"go_version"`
	CPU       string            `json:"cpu"`
	Seed      int64             `json:"seed"`
	Results   []BenchmarkResult `json:"results"`
}

// Store 실행 기록 저장소
type Store interface {
	Put(run Run) error
	// List 는 ID 오름차순으로 돌려준다.
	List() ([]Run, error)
	Close() error
}

// Open 은 backend 엔진으로 path 에 저장소를 연다.
func Open(backend, path string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", backend), zap.String("path", path))
	switch backend {
	case "bbolt":
		return openBolt(path)
	case "badger":
		return openBadger(path, logger)
	case "pebble":
		return openPebble(path, logger)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q (want one of %v)", backend, Backends)
}

func runKey(id uint64) []byte {
	key := make([]byte, keySize)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeRun(run Run) ([]byte, []byte, error) {
	value, err := json.Marshal(run)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode run %d", run.ID)
	}
	return runKey(run.ID), value, nil
}

func decodeRun(key, value []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(value, &run); err != nil {
		return Run{}, errors.Wrapf(err, "decode run %x", key)
	}
	return run, nil
}

// 빅엔디언 키라서 엔진 순회 순서가 곧 ID 순서지만, 엔진마다 보장 방식이 달라 한 번 더 정렬한다.
func sortRuns(runs []Run) []Run {
	slices.SortFunc(runs, func(a, b Run) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return runs
}
