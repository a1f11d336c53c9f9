package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/paths"
	"github.com/skillpilot/skillpilot/internal/ports"
)

const maxRetries = 5

// StatsRepository implements ports.StatsRepository on SQLite
type StatsRepository struct {
	db *gorm.DB
}

var _ ports.StatsRepository = (*StatsRepository)(nil)

// NewStatsRepository opens (and migrates) the stats database at dbPath
func NewStatsRepository(dbPath string) (*StatsRepository, error) {
	dbPath = paths.ExpandPath(dbPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets concurrent CLI invocations record without blocking each other
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CounterModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate counters schema: %w", err)
	}

	return &StatsRepository{db: db}, nil
}

// Close closes the database connection
func (r *StatsRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load reads every counter into a Stats value
func (r *StatsRepository) Load(ctx context.Context) (*domain.Stats, error) {
	var rows []CounterModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	stats := &domain.Stats{
		ToggleCounts:       make(map[string]int64),
		ProfileApplyCounts: make(map[string]int64),
	}
	for _, row := range rows {
		switch row.Kind {
		case kindToggle:
			stats.ToggleCounts[row.Key] = row.Count
		case kindProfileApply:
			stats.ProfileApplyCounts[row.Key] = row.Count
		case kindTotal:
			switch row.Key {
			case totalScans:
				stats.TotalScans = row.Count
			case totalLinksCreated:
				stats.TotalLinksCreated = row.Count
			case totalLinksRemoved:
				stats.TotalLinksRemoved = row.Count
			case totalBrokenCleaned:
				stats.TotalBrokenCleaned = row.Count
			}
		}
	}
	return stats, nil
}

func (r *StatsRepository) RecordToggle(ctx context.Context, skillName string) error {
	return r.increment(ctx, kindToggle, skillName, 1)
}

func (r *StatsRepository) RecordProfileApply(ctx context.Context, profileID string) error {
	return r.increment(ctx, kindProfileApply, profileID, 1)
}

func (r *StatsRepository) RecordScan(ctx context.Context) error {
	return r.increment(ctx, kindTotal, totalScans, 1)
}

func (r *StatsRepository) RecordLinksCreated(ctx context.Context, count int) error {
	return r.increment(ctx, kindTotal, totalLinksCreated, count)
}

func (r *StatsRepository) RecordLinksRemoved(ctx context.Context, count int) error {
	return r.increment(ctx, kindTotal, totalLinksRemoved, count)
}

func (r *StatsRepository) RecordBrokenCleaned(ctx context.Context, count int) error {
	return r.increment(ctx, kindTotal, totalBrokenCleaned, count)
}

// increment upserts a counter row, adding n to its count
func (r *StatsRepository) increment(ctx context.Context, kind, key string, n int) error {
	if n <= 0 {
		return nil
	}
	return withRetry(func() error {
		row := CounterModel{Kind: kind, Key: key, Count: int64(n)}
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "kind"}, {Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"count":      gorm.Expr("counters.count + ?", n),
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&row).Error
	}, maxRetries)
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
