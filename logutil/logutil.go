package logutil

import (
	"os"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig 로그 설정. Filename 이 비어 있으면 stderr 로 출력한다.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

var _globalLogger atomic.Pointer[zap.Logger]

func init() {
	_globalLogger.Store(zap.NewNop())
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return zap.AtomicLevel{}, errors.Wrapf(err, "log level %q", cfg.Level)
		}
	}
	return zap.NewAtomicLevelAt(level), nil
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

// SetupLogger 는 cfg 로 로거를 만들고 전역 로거로 등록한다.
func SetupLogger(cfg *LogConfig) (*zap.Logger, error) {
	if cfg.Format != "" && cfg.Format != "console" && cfg.Format != "json" {
		return nil, errors.Newf("unsupported log format %q", cfg.Format)
	}
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), level)
	logger := zap.New(core, cfg.getOptions()...)
	_globalLogger.Store(logger)
	return logger, nil
}

// GetGlobalLogger 는 SetupLogger 전에는 Nop 로거를 돌려준다.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load()
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// Sync 버퍼에 남은 로그를 내보낸다. stderr 의 sync 오류는 무시한다.
func Sync() {
	_ = GetGlobalLogger().Sync()
}
