//go:build quicksort64_unchecked

package quicksort64

// Unchecked 는 unguarded 루프가 unsafe 포인터 연산으로 빌드되었는지 여부.
const Unchecked = true

func sortRange(s []uint64, first, last int) {
	sortUnchecked(s, first, last)
}
