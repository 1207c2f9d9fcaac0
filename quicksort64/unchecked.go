package quicksort64

import "unsafe"

// 아래 함수들은 checked 버전과 같은 알고리즘을 unsafe 포인터 연산으로 구현한다.
// 경계 검사가 전혀 없으므로 호출 전제가 깨지면 메모리를 벗어나 읽고 쓴다.

func at(base unsafe.Pointer, i int) *uint64 {
	return (*uint64)(unsafe.Add(base, i*8))
}

func unguardedLinearInsertUnchecked(base unsafe.Pointer, last int, value uint64) {
	previous := last - 1
	for value < *at(base, previous) {
		*at(base, last) = *at(base, previous)
		last = previous
		previous--
	}
	*at(base, last) = value
}

func unguardedInsertionSortUnchecked(base unsafe.Pointer, first, last int) {
	for i := first; i < last; i++ {
		unguardedLinearInsertUnchecked(base, i, *at(base, i))
	}
}

func insertionSortUnchecked(s []uint64, first, last int) {
	if first == last {
		return
	}
	base := unsafe.Pointer(unsafe.SliceData(s))
	for i := first + 1; i < last; i++ {
		value := s[i]
		if value < s[first] {
			copy(s[first+1:i+1], s[first:i])
			s[first] = value
			continue
		}
		unguardedLinearInsertUnchecked(base, i, value)
	}
}

func unguardedPartitionUnchecked(base unsafe.Pointer, first, last int, pivot uint64) int {
	last--
	for *at(base, first) < pivot {
		first++
	}
	for pivot < *at(base, last) {
		last--
	}
	for first < last {
		a, b := at(base, first), at(base, last)
		*a, *b = *b, *a
		first++
		last--
		for *at(base, first) < pivot {
			first++
		}
		for pivot < *at(base, last) {
			last--
		}
	}
	return first
}

func quicksortLoopUnchecked(base unsafe.Pointer, first, last int) {
	for last-first > Threshold {
		middle := first + (last-first)/2
		pivot := medianOf3(*at(base, first), *at(base, middle), *at(base, last-1))
		cut := unguardedPartitionUnchecked(base, first, last, pivot)
		if testHookPartition != nil {
			testHookPartition(last - first)
		}
		if last-cut < cut-first {
			quicksortLoopUnchecked(base, cut, last)
			last = cut
		} else {
			quicksortLoopUnchecked(base, first, cut)
			first = cut
		}
	}
}

func sortUnchecked(s []uint64, first, last int) {
	if last-first <= Threshold {
		insertionSortUnchecked(s, first, last)
		return
	}
	base := unsafe.Pointer(unsafe.SliceData(s))
	quicksortLoopUnchecked(base, first, last)
	middle := first + Threshold
	insertionSortUnchecked(s, first, middle)
	unguardedInsertionSortUnchecked(base, middle, last)
}
