package quicksort64

// 테스트에서 분할 작업량을 세기 위한 훅. 분할된 구간 길이를 받는다.
var testHookPartition func(n int)

// medianOf3 는 세 값의 중앙값을 고정된 결정 트리로 고른다.
func medianOf3(a, b, c uint64) uint64 {
	if a < b {
		if b < c {
			return b
		} else if a < c {
			return c
		}
		return a
	} else if a < c {
		return a
	} else if b < c {
		return c
	}
	return b
}

// unguardedPartition 은 s[first:last] 를 pivot 기준으로 Hoare 분할하고 절단점을 돌려준다.
// 절단점 왼쪽은 pivot 이하, 오른쪽(포함)은 pivot 이상이다.
// pivot 이 구간 안에서 뽑힌 값이어야 두 스캔이 경계 검사 없이 멈춘다.
func unguardedPartition(s []uint64, first, last int, pivot uint64) int {
	last--
	for s[first] < pivot {
		first++
	}
	for pivot < s[last] {
		last--
	}
	for first < last {
		s[first], s[last] = s[last], s[first]
		first++
		last--
		for s[first] < pivot {
			first++
		}
		for pivot < s[last] {
			last--
		}
	}
	return first
}

// quicksortLoop 은 Threshold 보다 긴 구간을 계속 분할한다.
// 작은 쪽만 재귀하고 큰 쪽은 반복하므로 재귀 깊이는 O(log n) 이다.
// Threshold 이하로 줄어든 구간은 정렬하지 않고 남긴다.
func quicksortLoop(s []uint64, first, last int) {
	for last-first > Threshold {
		middle := first + (last-first)/2
		pivot := medianOf3(s[first], s[middle], s[last-1])
		cut := unguardedPartition(s, first, last, pivot)
		if testHookPartition != nil {
			testHookPartition(last - first)
		}
		if last-cut < cut-first {
			quicksortLoop(s, cut, last)
			last = cut
		} else {
			quicksortLoop(s, first, cut)
			first = cut
		}
	}
}
