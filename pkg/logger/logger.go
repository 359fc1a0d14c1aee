// Package logger wraps zap with a process default logger and helpers for
// carrying a logger on a context.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects a verbose, human readable logger.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects a JSON logger at info level.
	ProductionEnvironment = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger with one configured for environment.
// Unknown environments fall back to development settings.
func Setup(environment string) error {
	var (
		l   *zap.Logger
		err error
	)
	if environment == ProductionEnvironment {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	defaultLogger = l
	return nil
}

// Default returns the process default logger.
func Default() *zap.Logger {
	return defaultLogger
}

type key struct{}

// Get returns the logger attached to ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
			return l
		}
	}
	return defaultLogger
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields attaches a child logger carrying fields to ctx.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs msg at debug level.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs msg at info level.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs msg at warn level.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs msg at error level.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
