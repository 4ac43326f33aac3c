package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/colossus-credit/docs/docerrors"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the zap backend used by the CLI.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive).
	Level string
	// Format is FormatConsole or FormatJSON.
	Format string
	// File, when set, adds a rotating JSON file sink.
	File string
	// MaxSizeMB is the rotation size for File. Zero uses lumberjack's default.
	MaxSizeMB int
	// Writer receives console output. Defaults to os.Stderr.
	Writer io.Writer
}

// ParseLevel maps a configured level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, &docerrors.ConfigError{
			Option:  "log.level",
			Value:   level,
			Message: "must be one of: debug, info, warn, error",
		}
	}
}

// NewZap builds a zap-backed Logger from cfg.
func NewZap(cfg Config) (*ZapAdapter, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(consoleCfg)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, &docerrors.ConfigError{
			Option:  "log.format",
			Value:   cfg.Format,
			Message: "must be one of: console, json",
		}
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(w), level)}

	if cfg.File != "" {
		sink := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: 3,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
	return NewZapAdapter(logger), nil
}
