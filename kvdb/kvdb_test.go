package kvdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sampleRun(id uint64, label string) Run {
	return Run{
		ID:        id,
		StartedAt: time.Unix(0, int64(id)).UTC(),
		Label:     label,
		GoVersion: "go1.23",
		Seed:      42,
		Results: []BenchmarkResult{
			{Algorithm: "quicksort64", Size: 8, Elements: 1024, Duration: time.Microsecond, NsPerElement: 0.97, NsPerElementLog2: 0.32, Verified: true},
			{Algorithm: "quicksort64", Size: 16, Elements: 1024, Duration: 2 * time.Microsecond, NsPerElement: 1.95, NsPerElementLog2: 0.49, Verified: true},
		},
	}
}

func TestStoreBackends(t *testing.T) {
	for _, backend := range Backends {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), backend)
			logger := zaptest.NewLogger(t)

			store, err := Open(backend, path, logger)
			require.NoError(t, err)

			runs, err := store.List()
			require.NoError(t, err)
			require.Empty(t, runs)

			// 순서를 섞어 넣어도 ID 순으로 나와야 한다.
			require.NoError(t, store.Put(sampleRun(300, "Go")))
			require.NoError(t, store.Put(sampleRun(100, "Go")))
			require.NoError(t, store.Put(sampleRun(200, "unchecked")))
			require.NoError(t, store.Close())

			store, err = Open(backend, path, logger)
			require.NoError(t, err)
			defer store.Close()

			runs, err = store.List()
			require.NoError(t, err)
			require.Len(t, runs, 3)
			require.Equal(t, []uint64{100, 200, 300}, []uint64{runs[0].ID, runs[1].ID, runs[2].ID})
			want := sampleRun(200, "unchecked")
			require.True(t, want.StartedAt.Equal(runs[1].StartedAt))
			want.StartedAt = runs[1].StartedAt
			require.Equal(t, want, runs[1])

			// 같은 ID 는 덮어쓴다.
			require.NoError(t, store.Put(sampleRun(100, "again")))
			runs, err = store.List()
			require.NoError(t, err)
			require.Len(t, runs, 3)
			require.Equal(t, "again", runs[0].Label)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir(), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestRunKeyOrder(t *testing.T) {
	require.Less(t, string(runKey(1)), string(runKey(256)))
	require.Less(t, string(runKey(255)), string(runKey(1<<40)))
}
