package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Email      *string `gorm:"type:varchar(255);uniqueIndex"`
	Name       string  `gorm:"type:varchar(100)"`
	SignUpType string  `gorm:"type:varchar(50);not null;default:'anonymous'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Preference *PreferenceModel `gorm:"foreignKey:AccountID"`
	Devices    []DeviceModel    `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// PreferenceModel mirrors the 'account_preferences' table, one row per account.
type PreferenceModel struct {
	AccountID      int64  `gorm:"primaryKey"`
	Lang           string `gorm:"type:varchar(8);not null;default:'id'"`
	Domain         string `gorm:"type:char(4);not null;default:'0000'"`
	TopicSelection bool   `gorm:"not null;default:false"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "account_preferences"
}
