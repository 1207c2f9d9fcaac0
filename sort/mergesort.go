package main

// mergeSort 안정 병합정렬. 길이만큼의 보조 버퍼를 한 번 할당한다.
func mergeSort(s []uint64) {
	if len(s) < 2 {
		return
	}
	mergeSortRange(s, make([]uint64, len(s)), 0, len(s))
}

// mergeSortRange s[first:last] 정렬. scratch 는 같은 인덱스 구간만 쓴다.
func mergeSortRange(s, scratch []uint64, first, last int) {
	if last-first <= baselineCutoff {
		insertionSort(s, first, last)
		return
	}
	middle := first + (last-first)/2
	mergeSortRange(s, scratch, first, middle)
	mergeSortRange(s, scratch, middle, last)
	merge(s, scratch, first, middle, last)
}

// merge 정렬된 s[first:middle] 과 s[middle:last] 를 합친다. 두 구간 모두 비어 있지 않아야 한다.
func merge(s, scratch []uint64, first, middle, last int) {
	if s[middle-1] <= s[middle] {
		return
	}
	copy(scratch[first:last], s[first:last])

	i, j, k := first, middle, first
	for i < middle && j < last {
		if scratch[j] < scratch[i] {
			s[k] = scratch[j]
			j++
		} else {
			s[k] = scratch[i]
			i++
		}
		k++
	}
	// 오른쪽이 남았다면 이미 제자리에 있다.
	copy(s[k:last], scratch[i:middle])
}
