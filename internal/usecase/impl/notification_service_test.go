package impl

import (
	"context"
	"testing"
	"time"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	mockRepo "hub/internal/mocks/repository"
	mockSvc "hub/internal/mocks/service"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository, *mockRepo.MockDeviceRepository, *mockSvc.MockEventPublisher, *mockSvc.MockPushService) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockPush := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: mockNotificationRepo,
		DeviceRepo:       mockDeviceRepo,
		Publisher:        mockPublisher,
		PushService:      mockPush,
		Logger:           testLogger(),
	})

	return svc, mockNotificationRepo, mockDeviceRepo, mockPublisher, mockPush
}

func TestNotificationService_List_CapsAtRecentEntries(t *testing.T) {
	svc, mockNotificationRepo, _, _, _ := newNotificationServiceForTest(t)

	ctx := context.Background()
	notifications := []*entity.Notification{
		{ID: 2, Title: "newer", Timestamp: time.Now()},
		{ID: 1, Title: "older", Timestamp: time.Now().Add(-time.Hour)},
	}

	mockNotificationRepo.EXPECT().ListRecent(ctx, 10).Return(notifications, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestNotificationService_Dispatch_PublishesEvent(t *testing.T) {
	svc, mockNotificationRepo, _, mockPublisher, _ := newNotificationServiceForTest(t)

	ctx := context.Background()
	topicID := int64(4)

	mockNotificationRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Notification{ID: 3, Title: "Flash Sale", Body: "50% off", TopicID: &topicID}, nil)

	mockPublisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Run(func(_ context.Context, event *service.DispatchEvent) {
			assert.Equal(t, int64(3), event.NotificationID)
			require.NotNil(t, event.TopicID)
			assert.Equal(t, topicID, *event.TopicID)
			assert.Equal(t, "Flash Sale", event.Title)
			assert.Equal(t, "50% off", event.Body)
		}).
		Return(nil)

	output, err := svc.Dispatch(ctx, &usecase.DispatchInput{NotificationID: 3})
	require.NoError(t, err)
	assert.True(t, output.Published)
	assert.Equal(t, int64(3), output.NotificationID)
}

func TestNotificationService_Dispatch_UnknownNotification(t *testing.T) {
	svc, mockNotificationRepo, _, _, _ := newNotificationServiceForTest(t)

	ctx := context.Background()

	mockNotificationRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := svc.Dispatch(ctx, &usecase.DispatchInput{NotificationID: 99})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNotificationService_ProcessDispatchEvent_SendsAndPrunes(t *testing.T) {
	svc, _, mockDeviceRepo, _, mockPush := newNotificationServiceForTest(t)

	ctx := context.Background()
	topicID := int64(4)
	event := &service.DispatchEvent{NotificationID: 3, TopicID: &topicID, Title: "Flash Sale", Body: "50% off"}
	tokens := []string{"tok-a", "tok-b", "tok-c"}

	mockDeviceRepo.EXPECT().ListPushTokens(ctx, &topicID).Return(tokens, nil)

	mockPush.EXPECT().
		SendBatch(ctx, tokens, "Flash Sale", "50% off", map[string]string{
			"notification_id": "3",
			"topic_id":        "4",
		}).
		Return(2, 1, []string{"tok-c"}, nil)

	mockDeviceRepo.EXPECT().ClearPushTokens(ctx, []string{"tok-c"}).Return(nil)

	report, err := svc.ProcessDispatchEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, 1, report.PrunedTokens)
}

func TestNotificationService_ProcessDispatchEvent_BatchFailureIsCounted(t *testing.T) {
	svc, _, mockDeviceRepo, _, mockPush := newNotificationServiceForTest(t)

	ctx := context.Background()
	event := &service.DispatchEvent{NotificationID: 3, Title: "Flash Sale", Body: "50% off"}
	tokens := []string{"tok-a", "tok-b"}

	// Broadcast: nil topic means every device with a push token.
	mockDeviceRepo.EXPECT().ListPushTokens(ctx, (*int64)(nil)).Return(tokens, nil)

	mockPush.EXPECT().
		SendBatch(ctx, tokens, "Flash Sale", "50% off", map[string]string{"notification_id": "3"}).
		Return(0, 0, nil, errors.New("gateway unavailable"))

	report, err := svc.ProcessDispatchEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 2, report.FailureCount)
	assert.Equal(t, 0, report.PrunedTokens)
}

func TestNotificationService_ProcessDispatchEvent_NoTargets(t *testing.T) {
	svc, _, mockDeviceRepo, _, _ := newNotificationServiceForTest(t)

	ctx := context.Background()
	event := &service.DispatchEvent{NotificationID: 3, Title: "Flash Sale", Body: "50% off"}

	mockDeviceRepo.EXPECT().ListPushTokens(ctx, (*int64)(nil)).Return(nil, nil)

	report, err := svc.ProcessDispatchEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 0, report.FailureCount)
}
