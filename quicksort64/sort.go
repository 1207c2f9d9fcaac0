package quicksort64

// Threshold 이하 길이의 구간은 분할하지 않고 삽입정렬에 맡긴다.
const Threshold = 16

// Sort 는 s 전체를 오름차순으로 제자리 정렬한다.
func Sort(s []uint64) {
	SortRange(s, 0, len(s))
}

// SortRange 는 s[first:last] 를 오름차순으로 제자리 정렬한다.
// 구간 밖의 원소는 건드리지 않는다.
//
// 0 <= first <= last <= len(s) 는 호출자 책임이다. 기본 빌드에서는 잘못된 구간이
// 런타임 패닉으로 드러나고, unchecked 빌드에서는 정의되지 않은 동작이다.
func SortRange(s []uint64, first, last int) {
	_ = s[first:last]
	sortRange(s, first, last)
}

// IsSorted 는 s 가 오름차순(비내림차순)인지 확인한다.
func IsSorted(s []uint64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func sortChecked(s []uint64, first, last int) {
	if last-first <= Threshold {
		insertionSort(s, first, last)
		return
	}
	quicksortLoop(s, first, last)
	// 앞 블록은 왼쪽에 sentinel 이 없으므로 반드시 guarded.
	middle := first + Threshold
	insertionSort(s, first, middle)
	unguardedInsertionSort(s, middle, last)
}
