package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// notificationListLimit caps the in-app inbox at the most recent entries.
	notificationListLimit = 10

	// pushBatchSize is the gateway's per-request token limit.
	pushBatchSize = 500
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	publisher        service.EventPublisher
	pushService      service.PushService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	Publisher        service.EventPublisher
	PushService      service.PushService
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		publisher:        params.Publisher,
		pushService:      params.PushService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the most recent authored notifications, newest first.
func (srv *notificationService) List(ctx context.Context) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListRecent(ctx, notificationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// Dispatch publishes a dispatch event for an authored notification. Delivery
// happens asynchronously in the worker; this call returns once the event is
// accepted by the queue.
func (srv *notificationService) Dispatch(ctx context.Context, input *usecase.DispatchInput) (*usecase.DispatchOutput, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, input.NotificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "notification not found")
		}

		return nil, errors.Wrap(err, "failed to load notification for dispatch")
	}

	event := &service.DispatchEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID,
		TopicID:        notification.TopicID,
		Title:          notification.Title,
		Body:           notification.Body,
	}

	if err := srv.publisher.PublishDispatchEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish dispatch event",
			slog.Int64("notificationID", notification.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to publish dispatch event")
	}

	srv.log(ctx).Info("Dispatch event published", slog.Int64("notificationID", notification.ID))

	return &usecase.DispatchOutput{
		NotificationID: notification.ID,
		Published:      true,
	}, nil
}

// ProcessDispatchEvent resolves the target tokens for an event, sends the
// pushes in gateway-sized batches and prunes tokens the gateway reported as
// dead. Partial batch failures are logged and counted, not fatal.
func (srv *notificationService) ProcessDispatchEvent(ctx context.Context, event *service.DispatchEvent) (*usecase.PushReport, error) {
	tokens, err := srv.deviceRepo.ListPushTokens(ctx, event.TopicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve push tokens")
	}

	srv.log(ctx).Info("Processing dispatch event",
		slog.Int64("notificationID", event.NotificationID),
		slog.Int("tokenCount", len(tokens)),
	)

	data := map[string]string{
		"notification_id": strconv.FormatInt(event.NotificationID, 10),
	}
	if event.TopicID != nil {
		data["topic_id"] = strconv.FormatInt(*event.TopicID, 10)
	}

	report := &usecase.PushReport{}
	var deadTokens []string

	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))
		batch := tokens[start:end]

		success, failure, invalid, sendErr := srv.pushService.SendBatch(ctx, batch, event.Title, event.Body, data)
		if sendErr != nil {
			srv.log(ctx).Error("Push batch failed",
				slog.Int64("notificationID", event.NotificationID),
				slog.Int("batchSize", len(batch)),
				slog.Any("error", sendErr),
			)
			report.FailureCount += len(batch)

			continue
		}

		report.SuccessCount += success
		report.FailureCount += failure
		deadTokens = append(deadTokens, invalid...)
	}

	if len(deadTokens) > 0 {
		if err := srv.deviceRepo.ClearPushTokens(ctx, deadTokens); err != nil {
			srv.log(ctx).Warn("Failed to prune dead push tokens",
				slog.Int("count", len(deadTokens)),
				slog.Any("error", err),
			)
		} else {
			report.PrunedTokens = len(deadTokens)
		}
	}

	srv.log(ctx).Info("Dispatch event processed",
		slog.Int64("notificationID", event.NotificationID),
		slog.Int("success", report.SuccessCount),
		slog.Int("failure", report.FailureCount),
		slog.Int("pruned", report.PrunedTokens),
	)

	return report, nil
}
