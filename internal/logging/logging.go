// Package logging provides structured logging for the engine and the CLI.
//
// Library code logs through L(), which is a no-op logger until Initialize is
// called, so importing the engine never produces output on its own.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level" toml:"level"`

	// Format is the output format (json, console).
	Format string `json:"format" yaml:"format" toml:"format"`

	// Output is the destination (stdout, stderr, or a file path).
	Output string `json:"output" yaml:"output" toml:"output"`

	// Development enables development mode (stack traces on errors).
	Development bool `json:"development" yaml:"development" toml:"development"`
}

// DefaultConfig returns the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize builds a logger from cfg and installs it as the global logger.
func Initialize(cfg Config) error {
	var ws zapcore.WriteSyncer
	switch cfg.Output {
	case "", "stderr":
		ws = zapcore.AddSync(os.Stderr)
	case "stdout":
		ws = zapcore.AddSync(os.Stdout)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		ws = zapcore.AddSync(file)
	}
	l, err := build(cfg, ws)
	if err != nil {
		return err
	}
	logger.Store(l)
	return nil
}

// InitializeWriter is like Initialize but writes to w. Used by tests.
func InitializeWriter(cfg Config, w io.Writer) error {
	l, err := build(cfg, zapcore.AddSync(w))
	if err != nil {
		return err
	}
	logger.Store(l)
	return nil
}

func build(cfg Config, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be console or json", cfg.Format)
	}

	core := zapcore.NewCore(encoder, ws, level)
	if cfg.Development {
		return zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
	}
	return zap.New(core), nil
}

// L returns the global logger.
func L() *zap.Logger {
	return logger.Load()
}

// Reset restores the no-op logger.
func Reset() {
	logger.Store(zap.NewNop())
}

// Sync flushes the global logger.
func Sync() {
	_ = L().Sync()
}
