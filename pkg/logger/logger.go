package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// New builds the process logger. "debug" switches to the development encoder.
func New(level string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l, err = zap.NewDevelopment()
	default:
		cfg := zap.NewProductionConfig()
		if lvl, perr := zapcore.ParseLevel(level); perr == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		l, err = cfg.Build()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
