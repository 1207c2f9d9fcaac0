package config

import (
	"math/bits"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"sortbench/kvdb"
	"sortbench/logutil"
)

var (
	ErrInvalidSizes = errors.New("invalid benchmark sizes")
	ErrInvalidStore = errors.New("invalid store config")
)

// Config sortbench 전체 설정
type Config struct {
	Bench  BenchConfig       `toml:"bench"`
	Output OutputConfig      `toml:"output"`
	Store  StoreConfig       `toml:"store"`
	Log    logutil.LogConfig `toml:"log"`
}

// BenchConfig 벤치마크 파라미터
type BenchConfig struct {
	// 배열 크기는 MinSize 부터 두 배씩 MaxSize 까지. 둘 다 2의 거듭제곱.
	MinSize int `toml:"min-size"`
	MaxSize int `toml:"max-size"`

	// 0 이면 실행 시각으로 시드를 정한다.
	Seed int64 `toml:"seed"`

	// 콘솔 표의 첫 칸 ([Go])
	Label string `toml:"label"`

	Algorithms []string `toml:"algorithms"`

	// 각 크기마다 마지막 청크의 정렬/순열 여부를 검사한다.
	Verify bool `toml:"verify"`
}

// OutputConfig 비어 있는 경로는 출력하지 않는다.
type OutputConfig struct {
	Markdown string `toml:"markdown"`
	JSON     string `toml:"json"`
	Metrics  string `toml:"metrics"`
}

// StoreConfig Backend 가 비어 있으면 결과를 저장하지 않는다.
type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// Default 기본 설정. 원래 벤치마크와 같은 8 ~ 16Mi 범위.
func Default() Config {
	return Config{
		Bench: BenchConfig{
			MinSize:    8,
			MaxSize:    16 * 1024 * 1024,
			Label:      "Go",
			Algorithms: []string{"quicksort64"},
			Verify:     true,
		},
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load 는 기본 설정 위에 path 의 TOML 파일을 덮어쓴다. 모르는 키는 오류.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// Validate 는 설정을 검사하고 알고리즘 목록의 중복을 없앤다.
func (c *Config) Validate() error {
	b := &c.Bench
	if !isPowerOfTwo(b.MinSize) || !isPowerOfTwo(b.MaxSize) {
		return errors.Wrapf(ErrInvalidSizes, "sizes must be powers of two, got %d..%d", b.MinSize, b.MaxSize)
	}
	if b.MinSize < 8 || b.MinSize > b.MaxSize {
		return errors.Wrapf(ErrInvalidSizes, "need 8 <= min-size <= max-size, got %d..%d", b.MinSize, b.MaxSize)
	}
	if len(b.Algorithms) == 0 {
		return errors.New("no algorithms configured")
	}
	b.Algorithms = lo.Uniq(b.Algorithms)

	if c.Store.Backend != "" {
		if !slices.Contains(kvdb.Backends, c.Store.Backend) {
			return errors.Wrapf(ErrInvalidStore, "unknown backend %q", c.Store.Backend)
		}
		if c.Store.Path == "" {
			return errors.Wrapf(ErrInvalidStore, "backend %s needs a path", c.Store.Backend)
		}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
