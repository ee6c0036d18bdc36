package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager repository.TransactionManager
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

// LikeServiceParams holds dependencies for likeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LikeRepo  repository.LikeRepository
	Logger    *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager: params.TxManager,
		likeRepo:  params.LikeRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips or explicitly sets the caller's like state for one item. The
// event write and the counter upsert share a transaction, so the counter
// never drifts from the committed event set by more than concurrent in-flight
// requests, and duplicate submissions of the same action stay idempotent.
func (srv *likeService) Toggle(ctx context.Context, accountID int64, input *usecase.ToggleLikeInput) (*entity.LikeResult, error) {
	key := input.Key()

	var result *entity.LikeResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.Likes()

		_, findErr := likeRepo.FindEvent(ctx, accountID, key)
		liked := findErr == nil
		if findErr != nil && !errors.Is(findErr, repository.ErrLikeEventNotFound) {
			return errors.Wrap(findErr, "failed to check like state")
		}

		action, noop := resolveToggleAction(input.State, liked)
		if noop {
			total, err := likeRepo.GetTotal(ctx, key)
			if err != nil {
				return errors.Wrap(err, "failed to read like total")
			}
			result = &entity.LikeResult{Action: action, Total: total}

			return nil
		}

		var total int64
		var err error
		switch action {
		case entity.ActionLike:
			if err = likeRepo.CreateEvent(ctx, &entity.LikeEvent{
				AccountID: accountID,
				Key:       key,
				Timestamp: time.Now(),
			}); err != nil {
				// ErrDuplicateLikeEvent propagates for conflict resolution below.
				return err
			}
			total, err = likeRepo.IncrementCounter(ctx, key)
		case entity.ActionUnlike:
			if err = likeRepo.DeleteEvent(ctx, accountID, key); err != nil {
				// ErrLikeEventNotFound propagates for conflict resolution below.
				return err
			}
			total, err = likeRepo.DecrementCounter(ctx, key)
		}
		if err != nil {
			return errors.Wrap(err, "failed to update like counter")
		}

		result = &entity.LikeResult{Action: action, Total: total}

		return nil
	})

	// A concurrent request for the same (account, key) won the write race:
	// the desired end state already holds, so report it with a fresh total
	// instead of surfacing a storage conflict.
	if errors.Is(err, repository.ErrDuplicateLikeEvent) || errors.Is(err, repository.ErrLikeEventNotFound) {
		srv.log(ctx).Debug("Concurrent like toggle resolved by re-read",
			slog.Int64("accountID", accountID),
			slog.String("productID", key.ProductID),
		)

		return srv.resolveConflict(ctx, err, key)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute like toggle transaction",
			slog.Int64("accountID", accountID),
			slog.String("productID", key.ProductID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute like toggle transaction")
	}

	return result, nil
}

// resolveConflict reports the state a concurrent winner established.
func (srv *likeService) resolveConflict(ctx context.Context, cause error, key entity.LikeKey) (*entity.LikeResult, error) {
	total, err := srv.likeRepo.GetTotal(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read like total after conflict")
	}

	action := entity.ActionLike
	if errors.Is(cause, repository.ErrLikeEventNotFound) {
		action = entity.ActionUnlike
	}

	return &entity.LikeResult{Action: action, Total: total}, nil
}

// Status returns the caller's like state and the aggregate total for one item.
func (srv *likeService) Status(ctx context.Context, accountID int64, key entity.LikeKey) (*entity.LikeStatus, error) {
	statuses, err := srv.likeRepo.GetStatuses(ctx, accountID, key.MFD, key.ProductType, []string{key.ProductID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read like status")
	}
	if len(statuses) == 0 {
		return &entity.LikeStatus{Key: key}, nil
	}

	return statuses[0], nil
}

// BatchStatus returns like state for a batch of items sharing one dimension
// and category, in the order productIDs were given.
func (srv *likeService) BatchStatus(ctx context.Context, accountID int64, mfd string, productType int, productIDs []string) ([]*entity.LikeStatus, error) {
	statuses, err := srv.likeRepo.GetStatuses(ctx, accountID, mfd, productType, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read batch like status")
	}

	return statuses, nil
}

// resolveToggleAction decides which action a request performs. With no
// explicit state the current state flips; with an explicit state matching the
// current one the call is a no-op that just reports the total.
func resolveToggleAction(state *string, liked bool) (action string, noop bool) {
	switch {
	case state == nil:
		if liked {
			return entity.ActionUnlike, false
		}

		return entity.ActionLike, false
	case *state == entity.ActionLike:
		return entity.ActionLike, liked
	default:
		return entity.ActionUnlike, !liked
	}
}
