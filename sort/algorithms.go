package main

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"sortbench/quicksort64"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// sortFunc 슬라이스 전체를 제자리 정렬한다.
type sortFunc func([]uint64)

// algorithms 이름으로 고를 수 있는 정렬 구현. quicksort64 외에는 비교용 기준선이다.
var algorithms = map[string]sortFunc{
	"quicksort64":        quicksort64.Sort,
	"stdlib":             slices.Sort[[]uint64],
	"threeway":           threeWayQuickSort,
	"mergesort":          mergeSort,
	"parallel_quicksort": parallelQuickSort,
	"parallel_mergesort": parallelMergeSort,
}

type algorithm struct {
	name string
	sort sortFunc
}

func algorithmNames() []string {
	names := lo.Keys(algorithms)
	slices.Sort(names)
	return names
}

// lookupAlgorithms 이름 순서를 유지한 채 구현을 찾는다.
func lookupAlgorithms(names []string) ([]algorithm, error) {
	unknown := lo.Filter(names, func(name string, _ int) bool {
		_, ok := algorithms[name]
		return !ok
	})
	if len(unknown) > 0 {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%v (known: %v)", unknown, algorithmNames())
	}
	return lo.Map(names, func(name string, _ int) algorithm {
		return algorithm{name: name, sort: algorithms[name]}
	}), nil
}
