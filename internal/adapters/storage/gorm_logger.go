package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillpilot/skillpilot/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM messages to the application logger, tagged as the stats store
type gormLogger struct {
	level logger.LogLevel
	log   *slog.Logger
}

func newGormLogger() logger.Interface {
	l := &gormLogger{log: logging.Logger.With("component", "stats"), level: logger.Silent}
	if os.Getenv("SKILLPILOT_DEBUG") == "1" {
		l.level = logger.Info
	}
	return l
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level, log: l.log}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.log.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.log.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.log.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed statements at Error, slow ones at Warn and the rest at Debug,
// each gated by the matching GORM level
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		sql, rows := fc()
		l.log.ErrorContext(ctx, "Counter query failed", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.log.WarnContext(ctx, "Slow counter query", "duration", elapsed, "sql", sql, "rows", rows)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.log.DebugContext(ctx, "Counter query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}
