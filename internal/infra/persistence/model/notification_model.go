package model

import "time"

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	TopicID   *int64 `gorm:"index"`
	Timestamp time.Time

	Topic *TopicModel `gorm:"foreignKey:TopicID"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
