package model

import "time"

// TopicModel mirrors the 'topics' table.
type TopicModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(255);not null"`
	UserSelect  bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TopicModel) TableName() string {
	return "topics"
}

// TopicSubscriptionModel mirrors the 'topic_subscriptions' join table.
type TopicSubscriptionModel struct {
	AccountID    int64 `gorm:"primaryKey"`
	TopicID      int64 `gorm:"primaryKey"`
	SubscribedAt time.Time

	Topic *TopicModel `gorm:"foreignKey:TopicID"`
}

// TableName explicitly sets the table name for GORM.
func (TopicSubscriptionModel) TableName() string {
	return "topic_subscriptions"
}
