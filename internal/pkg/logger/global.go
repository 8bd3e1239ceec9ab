package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/campusride/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger installs the process-wide logger. Call once from main.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the process-wide logger, falling back to a no-op logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = &ZapLogger{Logger: zap.NewNop()}
	}
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Error(msg, fields...)
}

// Fatal logs and exits the process
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Fatal(msg, fields...)
}

// WarnCtx logs a warning correlated with the New Relic transaction in ctx, if any
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error correlated with the New Relic transaction in ctx, if any
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Error(msg, fields...)
}

// InfoCtx logs correlated with the New Relic transaction in ctx, if any
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Info(msg, fields...)
}

func ctxLogger(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
	if id := requestcontext.RequestID(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}
