package main

import (
	"runtime"
	"sync"
)

// parallelMergeSort 두 절반을 워커 풀에서 병렬로 정렬한 뒤 병합한다.
// 절반들은 s 와 scratch 의 서로 겹치지 않는 구간만 건드린다.
func parallelMergeSort(s []uint64) {
	if len(s) < 2 {
		return
	}

	initWorkerPool()
	parallelMergeSortRange(s, make([]uint64, len(s)), 0, len(s), getOptimalThreshold(len(s)), runtime.NumCPU())
}

func parallelMergeSortRange(s, scratch []uint64, first, last, threshold, depth int) {
	if depth <= 1 || last-first <= threshold {
		mergeSortRange(s, scratch, first, last)
		return
	}

	middle := first + (last-first)/2

	var wg sync.WaitGroup
	wg.Add(2)
	spawn(&wg,
		func() { parallelMergeSortRange(s, scratch, first, middle, threshold, depth/2) },
		func() { mergeSortRange(s, scratch, first, middle) })
	spawn(&wg,
		func() { parallelMergeSortRange(s, scratch, middle, last, threshold, depth/2) },
		func() { mergeSortRange(s, scratch, middle, last) })
	wg.Wait()

	merge(s, scratch, first, middle, last)
}
