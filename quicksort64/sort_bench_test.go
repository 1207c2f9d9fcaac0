package quicksort64

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

func benchmarkSort(b *testing.B, n int, sort func([]uint64)) {
	ref := randomSlice(rand.New(rand.NewSource(1)), n, 0)
	data := make([]uint64, n)

	b.SetBytes(int64(n * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sort(data)
	}
}

func BenchmarkSort(b *testing.B) {
	for _, n := range []int{8, 64, 1024, 1 << 16, 1 << 20} {
		b.Run(fmt.Sprintf("quicksort64/%d", n), func(b *testing.B) {
			benchmarkSort(b, n, Sort)
		})
		b.Run(fmt.Sprintf("checked/%d", n), func(b *testing.B) {
			benchmarkSort(b, n, func(s []uint64) { sortChecked(s, 0, len(s)) })
		})
		b.Run(fmt.Sprintf("unchecked/%d", n), func(b *testing.B) {
			benchmarkSort(b, n, func(s []uint64) { sortUnchecked(s, 0, len(s)) })
		})
		b.Run(fmt.Sprintf("stdlib/%d", n), func(b *testing.B) {
			benchmarkSort(b, n, slices.Sort[[]uint64])
		})
	}
}
