package quicksort64

import (
	"math/rand"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestInsertionSort(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for n := 0; n <= 2*Threshold; n++ {
		in := randomSlice(rng, n, 20)
		got := slices.Clone(in)
		insertionSort(got, 0, n)
		require.Equal(t, sortedCopy(in), got)

		got = slices.Clone(in)
		insertionSortUnchecked(got, 0, n)
		require.Equal(t, sortedCopy(in), got)
	}
}

// TestLinearInsertNewMinimum 은 새 최솟값이 앞부분 전체를 미는 경로를 검사한다.
func TestLinearInsertNewMinimum(t *testing.T) {
	s := []uint64{99, 3, 4, 5, 6, 1, 77}
	linearInsert(s, 1, 5, s[5])
	require.Equal(t, []uint64{99, 1, 3, 4, 5, 6, 77}, s)

	s = []uint64{3, 4, 6, 5}
	linearInsert(s, 0, 3, s[3])
	require.Equal(t, []uint64{3, 4, 5, 6}, s)
}

// TestUnguardedInsertionSortWithSentinel 은 왼쪽 sentinel 이 있을 때만 호출된다.
func TestUnguardedInsertionSortWithSentinel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(64)
		body := randomSlice(rng, n, 1000)
		for i := range body {
			body[i] += 10
		}
		s := append([]uint64{3, 1, 2, 10}, body...)
		want := append([]uint64{3, 1, 2, 10}, sortedCopy(body)...)

		got := slices.Clone(s)
		unguardedInsertionSort(got, 4, len(got))
		require.Equal(t, want, got)

		got = slices.Clone(s)
		unguardedInsertionSortUnchecked(unsafe.Pointer(unsafe.SliceData(got)), 4, len(got))
		require.Equal(t, want, got)
	}
}

func TestUnguardedLinearInsertStopsAtEqual(t *testing.T) {
	s := []uint64{1, 2, 2, 3, 2}
	unguardedLinearInsert(s, 4, s[4])
	require.Equal(t, []uint64{1, 2, 2, 2, 3}, s)
}

// 기본 빌드에서는 sentinel 전제를 어기면 인덱스 패닉이 난다.
func TestUnguardedLinearInsertCheckedPanicsWithoutSentinel(t *testing.T) {
	s := []uint64{5, 6, 1}
	require.Panics(t, func() { unguardedLinearInsert(s, 2, s[2]) })
}
