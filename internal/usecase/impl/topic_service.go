package impl

import (
	"context"
	"log/slog"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topicService implements the TopicUsecase interface.
type topicService struct {
	txManager  repository.TransactionManager
	topicRepo  repository.TopicRepository
	topicCache service.TopicCache
	logger     *slog.Logger
}

// TopicServiceParams holds dependencies for topicService, injected by Fx.
type TopicServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TopicRepo  repository.TopicRepository
	TopicCache service.TopicCache
	Logger     *slog.Logger
}

// NewTopicService is the constructor for topicService.
func NewTopicService(params TopicServiceParams) usecase.TopicUsecase {
	return &topicService{
		txManager:  params.TxManager,
		topicRepo:  params.TopicRepo,
		topicCache: params.TopicCache,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *topicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTopics returns the user-selectable topics, served cache-aside. Cache
// failures degrade to a store read and never fail the request.
func (srv *topicService) ListTopics(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := srv.topicCache.GetTopics(ctx)
	if err == nil {
		return topics, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Topic cache read failed, falling back to store", slog.Any("error", err))
	}

	topics, err = srv.topicRepo.ListSelectable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}

	if cacheErr := srv.topicCache.SetTopics(ctx, topics); cacheErr != nil {
		srv.log(ctx).Warn("Topic cache write failed", slog.Any("error", cacheErr))
	}

	return topics, nil
}

// Subscribe replaces the caller's subscription set wholesale and marks the
// topic-selection preference as completed, in one transaction. The resulting
// set is read back inside the same transaction so the caller sees exactly
// what was committed.
func (srv *topicService) Subscribe(ctx context.Context, accountID int64, input *usecase.SubscribeInput) ([]*entity.TopicSubscription, error) {
	srv.log(ctx).Info("Replacing topic subscriptions",
		slog.Int64("accountID", accountID),
		slog.Int("topicCount", len(input.TopicIDs)),
	)

	var subs []*entity.TopicSubscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.Topics()

		if err := topicRepo.ReplaceSubscriptions(ctx, accountID, input.TopicIDs); err != nil {
			return errors.Wrap(err, "failed to replace subscriptions")
		}

		completed := true
		patch := &entity.PreferencePatch{TopicSelection: &completed}
		if err := repoFactory.Accounts().PatchPreference(ctx, accountID, patch); err != nil {
			return errors.Wrap(err, "failed to mark topic selection completed")
		}

		var err error
		subs, err = topicRepo.ListSubscriptions(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to read back subscriptions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute subscription transaction",
			slog.Int64("accountID", accountID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute subscription transaction")
	}

	return subs, nil
}

// ListSubscriptions returns the caller's current subscriptions.
func (srv *topicService) ListSubscriptions(ctx context.Context, accountID int64) ([]*entity.TopicSubscription, error) {
	subs, err := srv.topicRepo.ListSubscriptions(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subs, nil
}
