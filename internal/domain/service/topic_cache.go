package service

import (
	"context"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when the cache holds no entry for the topic list.
var ErrCacheMiss = errors.New("cache miss")

// TopicCache caches the user-selectable topic list. The list changes only on
// admin writes, so reads are served cache-aside with a TTL; a cache failure
// must never fail the request, callers fall back to the store.
type TopicCache interface {
	// GetTopics returns the cached topic list or ErrCacheMiss.
	GetTopics(ctx context.Context) ([]*entity.Topic, error)

	// SetTopics stores the topic list with the configured TTL.
	SetTopics(ctx context.Context, topics []*entity.Topic) error

	// Invalidate drops the cached list.
	Invalidate(ctx context.Context) error
}
