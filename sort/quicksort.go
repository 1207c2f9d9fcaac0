package main

// 이 길이 이하의 구간은 기준선 정렬들도 삽입정렬로 마무리한다.
const baselineCutoff = 16

// threeWayQuickSort 3-way 분할 퀵소트 (비교용 기준선)
func threeWayQuickSort(s []uint64) {
	quickSortRange(s, 0, len(s))
}

// quickSortRange s[first:last] 정렬. 같은 값 구간은 다시 보지 않고,
// 작은 쪽만 재귀하고 큰 쪽은 반복한다.
func quickSortRange(s []uint64, first, last int) {
	for last-first > baselineCutoff {
		lt, gt := partition3Way(s, first, last)
		if lt-first < last-gt {
			quickSortRange(s, first, lt)
			first = gt
		} else {
			quickSortRange(s, gt, last)
			last = lt
		}
	}
	insertionSort(s, first, last)
}

// partition3Way 는 s[first:last] 를 [first,lt) < pivot, [lt,gt) == pivot, [gt,last) > pivot 으로 나눈다.
// 구간은 비어 있으면 안 된다.
func partition3Way(s []uint64, first, last int) (lt, gt int) {
	medianOfThree(s, first, first+(last-first)/2, last-1)
	pivot := s[first]

	lt, gt = first, last
	for i := first + 1; i < gt; {
		switch v := s[i]; {
		case v < pivot:
			s[lt], s[i] = v, s[lt]
			lt++
			i++
		case v > pivot:
			gt--
			s[i], s[gt] = s[gt], v
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree 세 위치를 정렬한 뒤 중앙값을 s[a] 로 옮긴다.
func medianOfThree(s []uint64, a, b, c int) {
	if s[a] > s[b] {
		s[a], s[b] = s[b], s[a]
	}
	if s[b] > s[c] {
		s[b], s[c] = s[c], s[b]
	}
	if s[a] > s[b] {
		s[a], s[b] = s[b], s[a]
	}
	s[a], s[b] = s[b], s[a]
}

func insertionSort(s []uint64, first, last int) {
	for i := first + 1; i < last; i++ {
		v := s[i]
		j := i
		for ; j > first && s[j-1] > v; j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}
