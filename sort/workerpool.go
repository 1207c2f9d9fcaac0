package main

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// 병렬 기준선 알고리즘이 공유하는 워커 풀.
// Nonblocking 이라 자리가 없으면 Submit 이 바로 실패하고 호출자가 순차로 처리한다.
var (
	workerPool   *ants.Pool
	workerPoolMu sync.Mutex
)

// initWorkerPool 풀이 없으면 만들고, releaseWorkerPool 로 닫힌 풀은 다시 연다.
func initWorkerPool() {
	workerPoolMu.Lock()
	defer workerPoolMu.Unlock()

	switch {
	case workerPool == nil:
		pool, err := ants.NewPool(runtime.NumCPU(), ants.WithNonblocking(true))
		if err != nil {
			panic(err)
		}
		workerPool = pool
	case workerPool.IsClosed():
		workerPool.Reboot()
	}
}

func releaseWorkerPool() {
	workerPoolMu.Lock()
	defer workerPoolMu.Unlock()

	if workerPool != nil && !workerPool.IsClosed() {
		workerPool.Release()
	}
}

// spawn 풀에 자리가 있으면 parallel 을 워커에서, 없으면 sequential 을 현재 고루틴에서 실행한다.
func spawn(wg *sync.WaitGroup, parallel, sequential func()) {
	err := workerPool.Submit(func() {
		defer wg.Done()
		parallel()
	})
	if err != nil {
		defer wg.Done()
		sequential()
	}
}
