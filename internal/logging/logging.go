// Package logging configures the process-wide zap logger. Calculators stay
// pure and never log; the CLI and TUI log around them.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.Logger

	// Sugar is the sugared logger for convenience.
	Sugar *zap.SugaredLogger
)

// Config contains logging configuration.
type Config struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"` // json or console
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults for an interactive CLI.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "console"}
}

// Initialize sets up the global logger.
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	Logger = zap.New(core)
	Sugar = Logger.Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func init() {
	_ = Initialize(DefaultConfig())
}
