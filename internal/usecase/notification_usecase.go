package usecase

import (
	"context"

	"hub/internal/domain/entity"
	"hub/internal/domain/service"
)

// DispatchInput names the authored notification to fan out.
type DispatchInput struct {
	NotificationID int64 `json:"notification_id" validate:"required,min=1"`
}

// DispatchOutput confirms that a dispatch event was published.
type DispatchOutput struct {
	NotificationID int64 `json:"notification_id"`
	Published      bool  `json:"published"`
}

// PushReport summarizes one processed dispatch event.
type PushReport struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
	PrunedTokens int `json:"pruned_tokens"`
}

// NotificationUsecase defines the interface for notification operations.
// Listing serves the in-app inbox; Dispatch and ProcessDispatchEvent form
// the two halves of the async fan-out pipeline.
type NotificationUsecase interface {
	// List returns the most recent authored notifications, newest first.
	List(ctx context.Context) ([]*entity.Notification, error)

	// Dispatch publishes a dispatch event for an authored notification. The
	// actual sends happen asynchronously in the worker.
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)

	// ProcessDispatchEvent resolves the target tokens for an event, sends
	// the pushes in gateway-sized batches and prunes tokens the gateway
	// reported as dead.
	ProcessDispatchEvent(ctx context.Context, event *service.DispatchEvent) (*PushReport, error)
}
