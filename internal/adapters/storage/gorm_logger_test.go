package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureGormLogger(level logger.LogLevel) (*gormLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := &gormLogger{log: slog.New(handler).With("component", "stats")}
	return l.LogMode(level).(*gormLogger), &buf
}

func TestGormLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "UPDATE counters SET count = count + 1", 1 }

	tests := []struct {
		name     string
		level    logger.LogLevel
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{"silent logs nothing", logger.Silent, time.Now(), errors.New("boom"), nil, true},
		{"error logged at error level", logger.Error, time.Now(), errors.New("boom"), []string{"level=ERROR", "Counter query failed", "component=stats"}, false},
		{"record not found ignored", logger.Error, time.Now(), gorm.ErrRecordNotFound, nil, true},
		{"slow query at warn level", logger.Warn, time.Now().Add(-time.Second), nil, []string{"level=WARN", "Slow counter query"}, false},
		{"fast query hidden below info", logger.Warn, time.Now(), nil, nil, true},
		{"fast query at info level", logger.Info, time.Now(), nil, []string{"level=DEBUG", "Counter query", "rows=1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := captureGormLogger(tt.level)
			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGormLogger_LogModeKeepsComponent(t *testing.T) {
	l, buf := captureGormLogger(logger.Info)
	l.Warn(context.Background(), "pragma %s", "busy_timeout")

	assert.Contains(t, buf.String(), "component=stats")
	assert.Contains(t, buf.String(), "pragma busy_timeout")
}
