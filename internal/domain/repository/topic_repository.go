package repository

import (
	"context"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTopicNotFound is returned when a referenced topic does not exist.
var ErrTopicNotFound = errors.New("topic not found")

// TopicRepository defines topic and subscription database operations.
type TopicRepository interface {
	// ListSelectable returns the user-selectable topics ordered by id.
	ListSelectable(ctx context.Context) ([]*entity.Topic, error)

	// FindByID retrieves one topic by id.
	FindByID(ctx context.Context, id int64) (*entity.Topic, error)

	// ReplaceSubscriptions makes topicIDs the complete subscription set for
	// the account: rows outside the set are deleted, missing rows are
	// inserted, existing rows keep their subscribed-at timestamp.
	ReplaceSubscriptions(ctx context.Context, accountID int64, topicIDs []int64) error

	// ListSubscriptions returns the account's subscriptions with topic data.
	ListSubscriptions(ctx context.Context, accountID int64) ([]*entity.TopicSubscription, error)
}
