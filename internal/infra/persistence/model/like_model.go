package model

import "time"

// LikeEventModel mirrors the 'like_events' table. The composite unique index
// guarantees at most one event per account and product tuple, which is what
// makes concurrent duplicate submissions detectable.
type LikeEventModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	AccountID   int64  `gorm:"not null;uniqueIndex:idx_like_events_account_product"`
	MFD         string `gorm:"column:mfd;type:varchar(32);not null;uniqueIndex:idx_like_events_account_product"`
	ProductType int    `gorm:"not null;uniqueIndex:idx_like_events_account_product"`
	ProductID   string `gorm:"type:varchar(64);not null;uniqueIndex:idx_like_events_account_product"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeEventModel) TableName() string {
	return "like_events"
}

// LikeCounterModel mirrors the 'like_counters' table, one row per product tuple.
type LikeCounterModel struct {
	MFD         string `gorm:"column:mfd;type:varchar(32);primaryKey"`
	ProductType int    `gorm:"primaryKey"`
	ProductID   string `gorm:"type:varchar(64);primaryKey"`
	Total       int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeCounterModel) TableName() string {
	return "like_counters"
}
