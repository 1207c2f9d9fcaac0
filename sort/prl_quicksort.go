package main

import (
	"runtime"
	"sync"
)

// parallelQuickSort 3-way 퀵소트의 두 구간을 워커 풀에서 병렬로 처리한다.
func parallelQuickSort(s []uint64) {
	if len(s) < 2 {
		return
	}

	initWorkerPool()
	parallelQuickSortRange(s, 0, len(s), getOptimalThreshold(len(s)), runtime.NumCPU())
}

func parallelQuickSortRange(s []uint64, first, last, threshold, depth int) {
	if depth <= 1 || last-first <= threshold {
		quickSortRange(s, first, last)
		return
	}

	lt, gt := partition3Way(s, first, last)

	var wg sync.WaitGroup
	wg.Add(2)
	spawn(&wg,
		func() { parallelQuickSortRange(s, first, lt, threshold, depth/2) },
		func() { quickSortRange(s, first, lt) })
	spawn(&wg,
		func() { parallelQuickSortRange(s, gt, last, threshold, depth/2) },
		func() { quickSortRange(s, gt, last) })
	wg.Wait()
}

// getOptimalThreshold 전체 크기에 따라 병렬로 나눌 최소 구간 길이를 정한다.
func getOptimalThreshold(totalSize int) int {
	switch {
	case totalSize < 1000:
		return totalSize // 작은 데이터는 병렬처리 안함
	case totalSize < 10000:
		return 300
	case totalSize < 100000:
		return 800
	default:
		return 1500
	}
}
