package model

import "time"

// DeviceModel mirrors the 'devices' table. Registration looks devices up by
// bare uuid, so uuid is the natural key and carries its own unique index:
// the loser of a concurrent first-contact insert fails on it and retries
// onto the update branch. The composite (account_id, uuid) index backs the
// per-account token-rotation path.
type DeviceModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AccountID *int64 `gorm:"uniqueIndex:idx_devices_account_uuid"`
	UUID      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_devices_uuid;uniqueIndex:idx_devices_account_uuid"`

	Manufacturer string `gorm:"type:varchar(100)"`
	Model        string `gorm:"type:varchar(100)"`
	OS           string `gorm:"type:varchar(50)"`
	OSVersion    string `gorm:"type:varchar(50)"`
	IsVirtual    bool   `gorm:"not null;default:false"`
	AppVersion   string `gorm:"type:varchar(50)"`
	LastIP       string `gorm:"type:varchar(45)"`
	PushToken    string `gorm:"type:varchar(255);index"`

	AccessToken           string `gorm:"type:text"`
	RefreshToken          string `gorm:"type:varchar(64);index"`
	RefreshTokenExpiresAt *time.Time

	FirstSeenAt time.Time
	LastSeenAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
