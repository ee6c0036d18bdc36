package usecase

import (
	"context"

	"hub/internal/domain/entity"
)

// SubscribeInput carries the complete desired subscription set. The stored
// set is replaced wholesale; an empty list unsubscribes from everything.
type SubscribeInput struct {
	TopicIDs []int64 `json:"topics" validate:"required"`
}

// TopicUsecase defines the interface for topic and subscription operations.
type TopicUsecase interface {
	// ListTopics returns the user-selectable topics, served cache-aside.
	ListTopics(ctx context.Context) ([]*entity.Topic, error)

	// Subscribe replaces the caller's subscription set, marks the
	// topic-selection preference as completed and returns the resulting
	// subscriptions with topic data.
	Subscribe(ctx context.Context, accountID int64, input *SubscribeInput) ([]*entity.TopicSubscription, error)

	// ListSubscriptions returns the caller's current subscriptions.
	ListSubscriptions(ctx context.Context, accountID int64) ([]*entity.TopicSubscription, error)
}
