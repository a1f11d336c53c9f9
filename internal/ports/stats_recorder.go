package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// StatsRecorder records usage counters
type StatsRecorder interface {
	RecordBrokenCleaned(ctx context.Context, count int) error
	RecordLinksCreated(ctx context.Context, count int) error
	RecordLinksRemoved(ctx context.Context, count int) error
	RecordProfileApply(ctx context.Context, profileID string) error
	RecordScan(ctx context.Context) error
	RecordToggle(ctx context.Context, skillName string) error
}

// StatsReader reads usage counters
type StatsReader interface {
	Load(ctx context.Context) (*domain.Stats, error)
}

// StatsRepository is the composite interface
type StatsRepository interface {
	StatsReader
	StatsRecorder
}
