// Package cache implements the topic-list cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hub/config"
	"hub/internal/domain/entity"
	"hub/internal/domain/lifecycle"
	"hub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	topicListKey         = "hub:topics:selectable"
	defaultTopicCacheTTL = 5 * time.Minute
)

// noopTopicCache always misses. Used when Redis is not configured so the
// topic read path degrades to store-only instead of failing.
type noopTopicCache struct{}

func (noopTopicCache) GetTopics(context.Context) ([]*entity.Topic, error) {
	return nil, service.ErrCacheMiss
}

func (noopTopicCache) SetTopics(context.Context, []*entity.Topic) error { return nil }

func (noopTopicCache) Invalidate(context.Context) error { return nil }

// redisTopicCache implements the service.TopicCache interface on go-redis.
type redisTopicCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTopicCache creates the topic cache based on configuration.
func NewTopicCache(params Params) service.TopicCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, topic cache disabled")

		return noopTopicCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TopicCacheTTL
	if ttl <= 0 {
		ttl = defaultTopicCacheTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisTopicCache{
		client: client,
		ttl:    ttl,
	}
}

// GetTopics returns the cached topic list or service.ErrCacheMiss.
func (c *redisTopicCache) GetTopics(ctx context.Context) ([]*entity.Topic, error) {
	payload, err := c.client.Get(ctx, topicListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read topic cache")
	}

	var topics []*entity.Topic
	if err := json.Unmarshal(payload, &topics); err != nil {
		// A corrupt entry is treated as a miss; the caller will overwrite it.
		return nil, service.ErrCacheMiss
	}

	return topics, nil
}

// SetTopics stores the topic list with the configured TTL.
func (c *redisTopicCache) SetTopics(ctx context.Context, topics []*entity.Topic) error {
	payload, err := json.Marshal(topics)
	if err != nil {
		return errors.Wrap(err, "failed to encode topic cache entry")
	}

	if err := c.client.Set(ctx, topicListKey, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write topic cache")
	}

	return nil
}

// Invalidate drops the cached list.
func (c *redisTopicCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, topicListKey).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate topic cache")
	}

	return nil
}
