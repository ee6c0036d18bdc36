// Package entity contains the core business objects of the project.
package entity

import "time"

// Notification is an authored push message. Authoring happens in the admin
// dashboard outside this service; this core reads and dispatches them.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	TopicID   *int64    `json:"topic_id,omitempty"` // Target topic; nil broadcasts to every device.
	Timestamp time.Time `json:"timestamp"`
}
