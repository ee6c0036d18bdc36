// Package entity contains the core business objects of the project.
package entity

import "time"

// Topic is a reference entity describing a push-notification topic.
type Topic struct {
	ID          int64     `json:"id"`           // Numeric identifier generated by the store.
	Name        string    `json:"name"`         // Stable machine name.
	DisplayName string    `json:"display_name"` // Human-readable label shown in the app.
	UserSelect  bool      `json:"-"`            // Whether users may subscribe to this topic themselves.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TopicSubscription joins an account to a topic. The set of rows per account
// is replaced wholesale on every subscription update, never patched.
type TopicSubscription struct {
	AccountID    int64     `json:"-"`
	TopicID      int64     `json:"-"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Topic        *Topic    `json:"topic,omitempty"` // Populated on reads that join the topic row.
}
