package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"sortbench/quicksort64"
)

var ErrVerifyFailed = errors.New("verification failed")

// 검사용 입력 패턴. 피벗 선택이 취약한 모양들을 포함한다.
var patterns = []string{"ascending", "descending", "equal", "organpipe", "sawtooth", "random"}

// fingerprint 원소 순서와 무관한 다중집합 해시. 값마다 xxhash 를 더한다.
func fingerprint(s []uint64) uint64 {
	var buf [8]byte
	var sum uint64
	for _, v := range s {
		binary.LittleEndian.PutUint64(buf[:], v)
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}

// verifyChunk sorted 가 오름차순이고 source 의 순열인지 확인한다.
func verifyChunk(sorted, source []uint64) error {
	if len(sorted) != len(source) {
		return errors.Wrapf(ErrVerifyFailed, "length %d != %d", len(sorted), len(source))
	}
	if !quicksort64.IsSorted(sorted) {
		return errors.Wrap(ErrVerifyFailed, "output is not sorted")
	}
	if fingerprint(sorted) != fingerprint(source) {
		return errors.Wrap(ErrVerifyFailed, "output is not a permutation of the input")
	}
	return nil
}

// checkPermutation 기준 배열이 0..n-1 의 순열인지 비트맵으로 확인한다.
func checkPermutation(data []uint64) error {
	if len(data) == 0 {
		return nil
	}
	bm := roaring64.New()
	bm.AddMany(data)
	if card := bm.GetCardinality(); card != uint64(len(data)) {
		return errors.Wrapf(ErrVerifyFailed, "dataset has %d distinct values, want %d", card, len(data))
	}
	if maxValue := bm.Maximum(); maxValue != uint64(len(data)-1) {
		return errors.Wrapf(ErrVerifyFailed, "dataset maximum is %d, want %d", maxValue, len(data)-1)
	}
	return nil
}

func generatePattern(name string, n int, rng *rand.Rand) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		switch name {
		case "ascending":
			s[i] = uint64(i)
		case "descending":
			s[i] = uint64(n - i)
		case "equal":
			s[i] = 1
		case "organpipe":
			if i < n/2 {
				s[i] = uint64(i)
			} else {
				s[i] = uint64(n - i - 1)
			}
		case "sawtooth":
			s[i] = uint64(i % 251)
		case "random":
			s[i] = rng.Uint64()
		default:
			panic("unknown pattern " + name)
		}
	}
	return s
}

// verifyPatterns 각 패턴을 정렬해 보고 결과를 한 줄씩 출력한다.
func verifyPatterns(w io.Writer, algo algorithm, n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	for _, name := range patterns {
		source := generatePattern(name, n, rng)
		sorted := append([]uint64(nil), source...)
		algo.sort(sorted)
		if err := verifyChunk(sorted, source); err != nil {
			fmt.Fprintf(w, "%-20s %-12s %12d FAIL\n", algo.name, name, n)
			return errors.Wrapf(err, "%s on %s input of %d", algo.name, name, n)
		}
		fmt.Fprintf(w, "%-20s %-12s %12d OK\n", algo.name, name, n)
	}
	return nil
}
