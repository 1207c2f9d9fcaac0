// Package quicksort64 는 uint64 전용 하이브리드 퀵소트 커널이다.
//
// 구성:
//   - 중앙값(median-of-three) 피벗 선택
//   - 경계 검사 없는(unguarded) Hoare 분할
//   - 작은 쪽만 재귀하고 큰 쪽은 반복하는 분할 루프 (스택 깊이 O(log n))
//   - Threshold 이하 구간은 정렬하지 않고 남겨 두었다가 마지막 삽입정렬 두 번으로 마무리
//
// 분할 루프가 끝나면 모든 원소는 최종 위치에서 Threshold 칸 이내에 있다.
// 그래서 앞쪽 Threshold 개는 경계 검사 삽입정렬(guarded), 나머지는 왼쪽에 이미
// 더 작은 값(sentinel)이 있으므로 경계 검사 없는 삽입정렬(unguarded)로 처리한다.
//
// 기본 빌드는 슬라이스 인덱싱(경계 검사 포함)을 쓴다. quicksort64_unchecked
// 빌드 태그를 주면 unguarded 내부 루프가 unsafe 포인터 연산으로 바뀐다.
//
//	go test -tags quicksort64_unchecked ./quicksort64/
//
// 안정 정렬이 아니며 비교 함수, 제네릭 타입, 병렬 처리는 지원하지 않는다.
package quicksort64
