package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	l *zap.Logger
}

func New(l *zap.Logger) *Logger {
	return &Logger{l: l}
}

// Build creates a zap-backed Logger. Production uses the JSON encoder, every
// other env gets the development console encoder with coloured levels.
func Build(env, level string) (*Logger, error) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg.Level = lvl

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return New(zl), nil
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

// With returns a child logger carrying the given fields on every record.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l: l.l.With(fields...)}
}

// StdLogger adapts the logger for APIs that want a *log.Logger, such as
// http.Server.ErrorLog. Records are written at error level.
func (l *Logger) StdLogger() *log.Logger {
	std, err := zap.NewStdLogAt(l.l, zapcore.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(l.l)
	}

	return std
}

func (l *Logger) Sync() error {
	return l.l.Sync() //nolint:wrapcheck
}
