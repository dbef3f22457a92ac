// Package logger owns the process-wide zap logger and hands out named children.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	mu   sync.Mutex
	base *zap.Logger
)

func root() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		base = build()
	}
	return base
}

func build() *zap.Logger {
	conf := zap.NewProductionConfig()
	conf.Level = level
	conf.Sampling = nil
	conf.EncoderConfig.TimeKey = "ts"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := conf.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// SetLevel changes the level of every logger handed out so far.
func SetLevel(text string) error {
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return fmt.Errorf("parse log level %q: %w", text, err)
	}
	return nil
}

// Replace swaps the root logger, mostly for tests.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
}

func Sugar() *zap.SugaredLogger {
	return root().Sugar()
}

// MustNamed returns a sugared logger scoped under name.
func MustNamed(name string) *zap.SugaredLogger {
	if name == "" {
		panic("logger: empty name")
	}
	return root().Named(name).Sugar()
}

func Sync() {
	_ = root().Sync()
}
