package quicksort64

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// 두 빌드 모드의 구현을 태그와 무관하게 모두 검사한다.
var impls = []struct {
	name string
	sort func(s []uint64, first, last int)
}{
	{"checked", sortChecked},
	{"unchecked", sortUnchecked},
}

func randomSlice(rng *rand.Rand, n int, limit uint64) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		if limit == 0 {
			s[i] = rng.Uint64()
		} else {
			s[i] = rng.Uint64() % limit
		}
	}
	return s
}

func pattern(name string, n int, rng *rand.Rand) []uint64 {
	s := make([]uint64, n)
	switch name {
	case "ascending":
		for i := range s {
			s[i] = uint64(i)
		}
	case "descending":
		for i := range s {
			s[i] = uint64(n - i)
		}
	case "equal":
		for i := range s {
			s[i] = 42
		}
	case "organpipe":
		for i := range s {
			if i < n/2 {
				s[i] = uint64(i)
			} else {
				s[i] = uint64(n - i - 1)
			}
		}
	case "sawtooth":
		for i := range s {
			s[i] = uint64(i % 100)
		}
	case "random":
		return randomSlice(rng, n, 0)
	default:
		panic("unknown pattern " + name)
	}
	return s
}

func sortedCopy(s []uint64) []uint64 {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}

func TestSortExamples(t *testing.T) {
	for _, impl := range impls {
		t.Run(impl.name, func(t *testing.T) {
			s := []uint64{5, 3, 1, 4, 2}
			impl.sort(s, 0, len(s))
			require.Equal(t, []uint64{1, 2, 3, 4, 5}, s)

			s = []uint64{1, 1, 1, 1}
			impl.sort(s, 0, len(s))
			require.Equal(t, []uint64{1, 1, 1, 1}, s)
		})
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	for _, impl := range impls {
		t.Run(impl.name, func(t *testing.T) {
			var empty []uint64
			impl.sort(empty, 0, 0)
			require.Empty(t, empty)

			s := []uint64{9, 3, 7}
			impl.sort(s, 1, 1)
			require.Equal(t, []uint64{9, 3, 7}, s)
			impl.sort(s, 2, 3)
			require.Equal(t, []uint64{9, 3, 7}, s)
		})
	}
}

func TestSortPublicAPI(t *testing.T) {
	Sort(nil)

	s := []uint64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	Sort(s)
	require.True(t, IsSorted(s))

	s = []uint64{50, 40, 30, 20, 10, 0}
	SortRange(s, 1, 5)
	require.Equal(t, []uint64{50, 10, 20, 30, 40, 0}, s)
}

func TestSortRangeBadRangePanics(t *testing.T) {
	s := make([]uint64, 4)
	require.Panics(t, func() { SortRange(s, 3, 2) })
	require.Panics(t, func() { SortRange(s, 0, 5) })
	require.Panics(t, func() { SortRange(s, -1, 2) })
}

func TestIsSorted(t *testing.T) {
	require.True(t, IsSorted(nil))
	require.True(t, IsSorted([]uint64{1}))
	require.True(t, IsSorted([]uint64{1, 1, 2}))
	require.False(t, IsSorted([]uint64{2, 1}))
}

// TestSortThresholdBoundary 는 삽입정렬/퀵소트 경계 길이 주변을 검사한다.
func TestSortThresholdBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, impl := range impls {
		for _, n := range []int{Threshold - 1, Threshold, Threshold + 1, Threshold + 2, 2 * Threshold, 2*Threshold + 1} {
			t.Run(fmt.Sprintf("%s/n=%d", impl.name, n), func(t *testing.T) {
				for trial := 0; trial < 200; trial++ {
					in := randomSlice(rng, n, uint64(1+trial%8*100))
					got := slices.Clone(in)
					impl.sort(got, 0, n)
					require.Equal(t, sortedCopy(in), got)
				}
			})
		}
	}
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 256, 1000, 4096, 100000}
	for _, impl := range impls {
		for _, n := range sizes {
			for _, limit := range []uint64{0, 2, 1000} {
				in := randomSlice(rng, n, limit)
				got := slices.Clone(in)
				impl.sort(got, 0, n)
				require.Equal(t, sortedCopy(in), got, "%s n=%d limit=%d", impl.name, n, limit)
			}
		}
	}
}

// TestSortRangeLeavesOutsideUntouched 는 구간 밖 원소가 그대로인지 본다.
func TestSortRangeLeavesOutsideUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, impl := range impls {
		for _, r := range [][2]int{{0, 0}, {0, 10}, {5, 40}, {37, 150}, {100, 1000}, {999, 1000}, {0, 1000}} {
			in := randomSlice(rng, 1000, 500)
			got := slices.Clone(in)
			first, last := r[0], r[1]
			impl.sort(got, first, last)
			require.Equal(t, in[:first], got[:first], "%s %v", impl.name, r)
			require.Equal(t, in[last:], got[last:], "%s %v", impl.name, r)
			require.Equal(t, sortedCopy(in[first:last]), got[first:last], "%s %v", impl.name, r)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, impl := range impls {
		s := randomSlice(rng, 5000, 300)
		impl.sort(s, 0, len(s))
		want := slices.Clone(s)
		impl.sort(s, 0, len(s))
		require.Equal(t, want, s, impl.name)
	}
}

// TestSortAdversarial 은 피벗 선택이 O(n^2) 로 무너지지 않는지 분할 작업량으로 확인한다.
func TestSortAdversarial(t *testing.T) {
	const n = 1 << 15
	rng := rand.New(rand.NewSource(5))
	bound := int(8 * n * math.Log2(n))

	work := 0
	testHookPartition = func(size int) { work += size }
	t.Cleanup(func() { testHookPartition = nil })

	for _, impl := range impls {
		for _, name := range []string{"ascending", "descending", "equal", "organpipe", "sawtooth", "random"} {
			t.Run(impl.name+"/"+name, func(t *testing.T) {
				in := pattern(name, n, rng)
				got := slices.Clone(in)
				work = 0
				impl.sort(got, 0, n)
				require.Equal(t, sortedCopy(in), got)
				require.Positive(t, work)
				require.LessOrEqual(t, work, bound)
			})
		}
	}
}

// TestSortAllDuplicatesTerminates 는 모든 값이 피벗과 같을 때 분할이 끝나는지 확인한다.
func TestSortAllDuplicatesTerminates(t *testing.T) {
	for _, impl := range impls {
		for _, n := range []int{Threshold + 1, 100, 1 << 12, 1 << 16} {
			s := make([]uint64, n)
			for i := range s {
				s[i] = 7
			}
			impl.sort(s, 0, n)
			for _, v := range s {
				require.Equal(t, uint64(7), v)
			}
		}
	}
}

func TestSortExtremeValues(t *testing.T) {
	for _, impl := range impls {
		s := []uint64{math.MaxUint64, 0, math.MaxUint64, 1, 0, math.MaxUint64 - 1}
		s = append(s, pattern("descending", 40, nil)...)
		s = append(s, math.MaxUint64, 0)
		want := sortedCopy(s)
		impl.sort(s, 0, len(s))
		require.Equal(t, want, s, impl.name)
	}
}

func TestUncheckedMatchesChecked(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 50; trial++ {
		in := randomSlice(rng, 1+rng.Intn(3000), uint64(rng.Intn(50)))
		a, b := slices.Clone(in), slices.Clone(in)
		sortChecked(a, 0, len(a))
		sortUnchecked(b, 0, len(b))
		require.Equal(t, a, b)
	}
}
