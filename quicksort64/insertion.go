package quicksort64

// unguardedLinearInsert 는 value 를 s[last] 자리에서 왼쪽으로 밀어 넣는다.
// 왼쪽 어딘가에 value 이하의 값이 있어야 멈춘다 (경계 검사 없음).
func unguardedLinearInsert(s []uint64, last int, value uint64) {
	previous := last - 1
	for value < s[previous] {
		s[last] = s[previous]
		last = previous
		previous--
	}
	s[last] = value
}

// unguardedInsertionSort 는 s[first:last] 를 정렬한다.
// first 이전에 구간의 최솟값 이하인 원소가 있어야 한다.
func unguardedInsertionSort(s []uint64, first, last int) {
	for i := first; i < last; i++ {
		unguardedLinearInsert(s, i, s[i])
	}
}

// linearInsert 는 s[first:last] 가 정렬되어 있을 때 value 를 끼워 넣는다.
func linearInsert(s []uint64, first, last int, value uint64) {
	if value < s[first] {
		// 새 최솟값: 앞부분을 통째로 한 칸 민다.
		copy(s[first+1:last+1], s[first:last])
		s[first] = value
		return
	}
	unguardedLinearInsert(s, last, value)
}

// insertionSort 는 경계 검사(guarded) 삽입정렬이다.
func insertionSort(s []uint64, first, last int) {
	if first == last {
		return
	}
	for i := first + 1; i < last; i++ {
		linearInsert(s, first, i, s[i])
	}
}
