package storage

import "time"

// Counter kinds
const (
	kindProfileApply = "profile_apply"
	kindToggle       = "toggle"
	kindTotal        = "total"
)

// Keys of kindTotal counters
const (
	totalBrokenCleaned = "broken_cleaned"
	totalLinksCreated  = "links_created"
	totalLinksRemoved  = "links_removed"
	totalScans         = "scans"
)

// CounterModel is the GORM model for the counters table
type CounterModel struct {
	Count     int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	Kind      string `gorm:"primaryKey;check:kind IN ('toggle','profile_apply','total')"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CounterModel) TableName() string { return "counters" }
