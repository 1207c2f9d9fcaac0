package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/config"
	"sortbench/kvdb"
	"sortbench/logutil"
	"sortbench/metrics"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "sortbench",
		Short:        "uint64 하이브리드 퀵소트 벤치마크",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML 설정 파일")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "로그 레벨 (설정 파일보다 우선)")

	cmd.AddCommand(newRunCommand(opts), newHistoryCommand(opts), newVerifyCommand(opts))
	return cmd
}

// load 기본값 → 설정 파일 → 전역 플래그 순으로 덮어쓴다.
func (o *rootOptions) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	var (
		minSize, maxSize int
		seed             int64
		label            string
		algos            []string
		noVerify         bool
		markdown         string
		jsonPath         string
		metricsPath      string
		backend          string
		storePath        string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "크기를 두 배씩 늘리며 정렬 시간을 측정한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("min-size") {
				cfg.Bench.MinSize = minSize
			}
			if flags.Changed("max-size") {
				cfg.Bench.MaxSize = maxSize
			}
			if flags.Changed("seed") {
				cfg.Bench.Seed = seed
			}
			if flags.Changed("label") {
				cfg.Bench.Label = label
			}
			if flags.Changed("algorithms") {
				cfg.Bench.Algorithms = algos
			}
			if noVerify {
				cfg.Bench.Verify = false
			}
			if flags.Changed("markdown") {
				cfg.Output.Markdown = markdown
			}
			if flags.Changed("json") {
				cfg.Output.JSON = jsonPath
			}
			if flags.Changed("metrics") {
				cfg.Output.Metrics = metricsPath
			}
			if flags.Changed("store") {
				cfg.Store.Backend = backend
			}
			if flags.Changed("store-path") {
				cfg.Store.Path = storePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logutil.SetupLogger(&cfg.Log)
			if err != nil {
				return err
			}
			defer logutil.Sync()
			defer releaseWorkerPool()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runBenchmarks(ctx, cmd.OutOrStdout(), cfg, logger)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&minSize, "min-size", 0, "가장 작은 배열 크기 (2의 거듭제곱)")
	flags.IntVar(&maxSize, "max-size", 0, "가장 큰 배열 크기이자 기준 배열 길이 (2의 거듭제곱)")
	flags.Int64Var(&seed, "seed", 0, "셔플 시드 (0 이면 시각 기반)")
	flags.StringVar(&label, "label", "", "표 첫 칸 라벨")
	flags.StringSliceVar(&algos, "algorithms", nil, fmt.Sprintf("측정할 알고리즘 %v", algorithmNames()))
	flags.BoolVar(&noVerify, "no-verify", false, "정렬 결과 검증 생략")
	flags.StringVar(&markdown, "markdown", "", "마크다운 보고서 경로")
	flags.StringVar(&jsonPath, "json", "", "JSON 결과 경로")
	flags.StringVar(&metricsPath, "metrics", "", "Prometheus textfile 경로")
	flags.StringVar(&backend, "store", "", fmt.Sprintf("실행 기록 저장소 %v", kvdb.Backends))
	flags.StringVar(&storePath, "store-path", "", "저장소 경로")
	return cmd
}

// runBenchmarks 측정 후 설정된 출력물을 모두 쓴다. 중단되면 부분 결과라도 남긴다.
func runBenchmarks(ctx context.Context, out io.Writer, cfg config.Config, logger *zap.Logger) error {
	algos, err := lookupAlgorithms(cfg.Bench.Algorithms)
	if err != nil {
		return err
	}

	r := &runner{
		cfg:    cfg.Bench,
		algos:  algos,
		out:    out,
		logger: logger,
	}
	if cfg.Output.Metrics != "" {
		r.recorder = metrics.NewRecorder(cfg.Bench.Label)
	}

	start := time.Now()
	run, runErr := r.run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	logger.Info("벤치마크 완료",
		zap.Int("results", len(run.Results)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("interrupted", runErr != nil))

	if cfg.Output.Markdown != "" {
		if err := saveResultsToMarkdown(cfg.Output.Markdown, run); err != nil {
			return err
		}
		logger.Info("마크다운 보고서 저장", zap.String("path", cfg.Output.Markdown))
	}
	if cfg.Output.JSON != "" {
		if err := saveResultsToJSON(cfg.Output.JSON, run); err != nil {
			return err
		}
		logger.Info("JSON 결과 저장", zap.String("path", cfg.Output.JSON))
	}
	if r.recorder != nil {
		if err := r.recorder.WriteTextfile(cfg.Output.Metrics); err != nil {
			return err
		}
	}
	if cfg.Store.Backend != "" {
		store, err := kvdb.Open(cfg.Store.Backend, cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Put(run); err != nil {
			return errors.Wrapf(err, "store run %d", run.ID)
		}
		logger.Info("실행 기록 저장", zap.String("backend", cfg.Store.Backend), zap.Uint64("run", run.ID))
	}
	return runErr
}

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var backend, storePath string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "저장된 실행 기록을 보여준다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Store.Backend = backend
			}
			if storePath != "" {
				cfg.Store.Path = storePath
			}
			if cfg.Store.Backend == "" {
				return errors.New("no store backend configured")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logutil.SetupLogger(&cfg.Log)
			if err != nil {
				return err
			}
			defer logutil.Sync()

			store, err := kvdb.Open(cfg.Store.Backend, cfg.Store.Path, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List()
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().StringVar(&backend, "store", "", fmt.Sprintf("실행 기록 저장소 %v", kvdb.Backends))
	cmd.Flags().StringVar(&storePath, "store-path", "", "저장소 경로")
	return cmd
}

func printHistory(w io.Writer, runs []kvdb.Run) {
	fmt.Fprintf(w, "%-20s %-16s %-8s %-9s %-8s %s\n", "id", "started", "label", "unchecked", "results", "algorithms")
	for _, run := range runs {
		algos := lo.Uniq(lo.Map(run.Results, func(r kvdb.BenchmarkResult, _ int) string {
			return r.Algorithm
		}))
		fmt.Fprintf(w, "%-20d %-16s %-8s %-9v %-8d %v\n",
			run.ID, humanize.Time(run.StartedAt), run.Label, run.Unchecked, len(run.Results), algos)
	}
}

func newVerifyCommand(opts *rootOptions) *cobra.Command {
	var (
		size  int
		seed  int64
		algos []string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "정렬된/역순/동일값/오르간 파이프/무작위 입력으로 정렬 결과를 검사한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if _, err := logutil.SetupLogger(&cfg.Log); err != nil {
				return err
			}
			defer logutil.Sync()
			defer releaseWorkerPool()

			selected, err := lookupAlgorithms(algos)
			if err != nil {
				return err
			}
			for _, algo := range selected {
				if err := verifyPatterns(cmd.OutOrStdout(), algo, size, seed); err != nil {
					logutil.Error("검증 실패", zap.Error(err))
					return err
				}
			}
			logutil.Info("검증 통과", zap.Strings("algorithms", algos), zap.Int("size", size))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 1<<16, "입력 길이")
	cmd.Flags().Int64Var(&seed, "seed", 1, "무작위 패턴 시드")
	cmd.Flags().StringSliceVar(&algos, "algorithms", []string{"quicksort64"}, "검사할 알고리즘")
	return cmd
}
