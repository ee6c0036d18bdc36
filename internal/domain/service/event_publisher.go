package service

import "context"

// DispatchEvent is the fan-out request published when a notification should
// be delivered. The worker consumes it, resolves the target device tokens and
// performs the gateway sends asynchronously.
type DispatchEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID int64  `json:"notification_id"`
	TopicID        *int64 `json:"topic_id,omitempty"` // Nil broadcasts to all devices.
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// EventPublisher defines the interface for publishing dispatch events to a
// message queue.
type EventPublisher interface {
	// PublishDispatchEvent publishes a notification dispatch event for async processing.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
