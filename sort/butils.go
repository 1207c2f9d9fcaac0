package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"sortbench/config"
	"sortbench/kvdb"
	"sortbench/metrics"
	"sortbench/quicksort64"
)

// SystemStats 타이밍 구간의 시간과 할당량 측정
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// startStats GC 를 먼저 돌려 이전 단계의 쓰레기가 측정에 섞이지 않게 한다.
func startStats() *SystemStats {
	runtime.GC()
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 구간 동안 할당된 바이트 수
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)
	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// newDataset 0..n-1 을 시드로 섞은 기준 배열
func newDataset(n int, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]uint64, n)
	for i := range data {
		data[i] = uint64(i)
	}
	rng.Shuffle(n, func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
	return data
}

// timeSort data 를 size 길이 청크로 차례로 buffer 에 복사해 정렬하고 전체 시간을 잰다.
// 끝나면 buffer[:size] 에는 마지막 청크의 정렬 결과가 남는다.
func timeSort(sort sortFunc, data, buffer []uint64, size int) (time.Duration, int, uint64) {
	elements := 0
	stats := startStats()
	for first := 0; first <= len(data)-size; first += size {
		chunk := buffer[:size]
		copy(chunk, data[first:first+size])
		sort(chunk)
		elements += size
	}
	duration, memUsage := stats.endStats()
	return duration, elements, memUsage
}

// runBenchmark 한 알고리즘, 한 크기 측정
func runBenchmark(algo algorithm, data, buffer []uint64, size int) kvdb.BenchmarkResult {
	duration, elements, memUsage := timeSort(algo.sort, data, buffer, size)
	lg := bits.Len(uint(size)) - 1

	result := kvdb.BenchmarkResult{
		Algorithm:   algo.name,
		Size:        size,
		Elements:    elements,
		Duration:    duration,
		MemoryUsage: memUsage,
	}
	if elements > 0 {
		result.NsPerElement = float64(duration.Nanoseconds()) / float64(elements)
	}
	if lg > 0 {
		result.NsPerElementLog2 = result.NsPerElement / float64(lg)
	}
	return result
}

// runner 설정 하나로 모든 알고리즘, 모든 크기를 측정한다.
type runner struct {
	cfg      config.BenchConfig
	algos    []algorithm
	out      io.Writer
	recorder *metrics.Recorder
	logger   *zap.Logger
}

// run ctx 는 크기 사이에서만 확인한다. 정렬 호출 자체는 끊지 않는다.
// 취소되면 그때까지의 결과와 ctx 오류를 함께 돌려준다.
func (r *runner) run(ctx context.Context) (kvdb.Run, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	startedAt := time.Now()
	run := kvdb.Run{
		ID:        uint64(startedAt.UnixNano()),
		StartedAt: startedAt,
		Label:     r.cfg.Label,
		Unchecked: quicksort64.Unchecked,
		GoVersion: runtime.Version(),
		CPU:       cpuDescription(),
		Seed:      seed,
	}

	data := newDataset(r.cfg.MaxSize, seed)
	if r.cfg.Verify {
		if err := checkPermutation(data); err != nil {
			return run, err
		}
	}
	buffer := make([]uint64, r.cfg.MaxSize)
	r.logger.Info("기준 배열 생성",
		zap.String("elements", humanize.Comma(int64(len(data)))),
		zap.String("memory", humanize.IBytes(uint64(len(data)+len(buffer))*8)),
		zap.Int64("seed", seed))

	printHeader(r.out, run)
	for _, algo := range r.algos {
		for size := r.cfg.MinSize; size <= r.cfg.MaxSize; size *= 2 {
			if err := ctx.Err(); err != nil {
				r.logger.Warn("벤치마크 중단", zap.String("algorithm", algo.name), zap.Int("size", size))
				return run, err
			}

			result := runBenchmark(algo, data, buffer, size)
			if r.cfg.Verify {
				last := result.Elements
				if err := verifyChunk(buffer[:size], data[last-size:last]); err != nil {
					return run, errors.Wrapf(err, "%s size %d", algo.name, size)
				}
				result.Verified = true
			}

			printRow(r.out, r.cfg.Label, result)
			if r.recorder != nil {
				r.recorder.Observe(result)
			}
			r.logger.Debug("측정 완료",
				zap.String("algorithm", algo.name),
				zap.Int("size", size),
				zap.Duration("duration", result.Duration),
				zap.Uint64("alloc", result.MemoryUsage))
			run.Results = append(run.Results, result)
		}
	}
	return run, nil
}

// cpuDescription 보고서 머리말용 CPU 요약
func cpuDescription() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64":
		for _, f := range []struct {
			name string
			has  bool
		}{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx512f", cpu.X86.HasAVX512F},
		} {
			if f.has {
				features = append(features, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	desc := fmt.Sprintf("%s/%s x%d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	if len(features) > 0 {
		desc += " [" + strings.Join(features, " ") + "]"
	}
	return desc
}

func printHeader(w io.Writer, run kvdb.Run) {
	fmt.Fprintf(w, "# %s, %s, GOMAXPROCS %d, unchecked=%v, seed %d\n",
		run.GoVersion, run.CPU, runtime.GOMAXPROCS(0), run.Unchecked, run.Seed)
	fmt.Fprintf(w, "%10s %-20s %12s %6s %6s\n", "", "algorithm", "size", "time", "log2")
}

// printRow time 은 원소당 ns (정수), log2 는 그 값을 log2(size) 로 나눈 값
func printRow(w io.Writer, label string, result kvdb.BenchmarkResult) {
	fmt.Fprintf(w, "%10s %-20s %12d %6d %6.1f\n",
		"["+label+"]", result.Algorithm, result.Size, int64(result.NsPerElement), result.NsPerElementLog2)
}

// saveResultsToMarkdown 알고리즘별 표와 크기별 최고 기록 요약
func saveResultsToMarkdown(path string, run kvdb.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	var builder strings.Builder
	builder.WriteString("# 정렬 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("- 실행 시간: %s\n", run.StartedAt.Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("- Go: %s\n", run.GoVersion))
	builder.WriteString(fmt.Sprintf("- CPU: %s\n", run.CPU))
	builder.WriteString(fmt.Sprintf("- unchecked 빌드: %v\n", run.Unchecked))
	builder.WriteString(fmt.Sprintf("- 시드: %d\n\n", run.Seed))

	var algos []string
	best := map[int]kvdb.BenchmarkResult{}
	var sizes []int
	for _, result := range run.Results {
		if len(algos) == 0 || algos[len(algos)-1] != result.Algorithm {
			algos = append(algos, result.Algorithm)
		}
		b, ok := best[result.Size]
		if !ok {
			sizes = append(sizes, result.Size)
		}
		if !ok || result.NsPerElement < b.NsPerElement {
			best[result.Size] = result
		}
	}

	for _, algo := range algos {
		builder.WriteString(fmt.Sprintf("## %s\n\n", algo))
		builder.WriteString("| 크기 | 정렬 원소 | 총 시간 | ns/원소 | ns/원소/log2 | 할당 | 검증 |\n")
		builder.WriteString("|------|-----------|---------|---------|--------------|------|------|\n")
		for _, result := range run.Results {
			if result.Algorithm != algo {
				continue
			}
			builder.WriteString(fmt.Sprintf("| %s | %s | %v | %.2f | %.2f | %s | %v |\n",
				humanize.Comma(int64(result.Size)), humanize.Comma(int64(result.Elements)),
				result.Duration.Round(time.Microsecond), result.NsPerElement, result.NsPerElementLog2,
				humanize.IBytes(result.MemoryUsage), result.Verified))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 크기별 최고 기록\n\n")
	builder.WriteString("| 크기 | 알고리즘 | ns/원소 |\n")
	builder.WriteString("|------|----------|---------|\n")
	for _, size := range sizes {
		b := best[size]
		builder.WriteString(fmt.Sprintf("| %s | %s | %.2f |\n", humanize.Comma(int64(size)), b.Algorithm, b.NsPerElement))
	}

	if _, err := writer.WriteString(builder.String()); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return writer.Flush()
}

// saveResultsToJSON 실행 기록 전체를 JSON 으로 저장
func saveResultsToJSON(path string, run kvdb.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(run); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return writer.Flush()
}
