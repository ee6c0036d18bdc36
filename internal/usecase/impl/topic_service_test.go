package impl

import (
	"context"
	"testing"

	"hub/internal/domain/entity"
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

func TestTopicService_ListTopics_CacheHit(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()
	cached := []*entity.Topic{{ID: 1, Name: "promo", DisplayName: "Promotions"}}

	// A warm cache must not touch the store at all.
	mockCache.EXPECT().GetTopics(ctx).Return(cached, nil)

	topics, err := topicService.ListTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, topics)
}

func TestTopicService_ListTopics_CacheMissFillsCache(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()
	stored := []*entity.Topic{
		{ID: 1, Name: "promo", DisplayName: "Promotions"},
		{ID: 2, Name: "news", DisplayName: "News"},
	}

	mockCache.EXPECT().GetTopics(ctx).Return(nil, service.ErrCacheMiss)
	mockTopicRepo.EXPECT().ListSelectable(ctx).Return(stored, nil)
	mockCache.EXPECT().SetTopics(ctx, stored).Return(nil)

	topics, err := topicService.ListTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, topics)
}

func TestTopicService_ListTopics_CacheFailureDegradesToStore(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()
	stored := []*entity.Topic{{ID: 1, Name: "promo", DisplayName: "Promotions"}}

	// A broken cache degrades to a store read; the write error is swallowed too.
	mockCache.EXPECT().GetTopics(ctx).Return(nil, errors.New("connection refused"))
	mockTopicRepo.EXPECT().ListSelectable(ctx).Return(stored, nil)
	mockCache.EXPECT().SetTopics(ctx, stored).Return(errors.New("connection refused"))

	topics, err := topicService.ListTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, topics)
}

func TestTopicService_Subscribe_ReplacesSetAndMarksPreference(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Topics().Return(mockTopicRepo)
	mockFactory.EXPECT().Accounts().Return(mockAccountRepo)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()
	topicIDs := []int64{1, 3}
	replaced := []*entity.TopicSubscription{
		{AccountID: 7, TopicID: 1, Topic: &entity.Topic{ID: 1, Name: "promo"}},
		{AccountID: 7, TopicID: 3, Topic: &entity.Topic{ID: 3, Name: "news"}},
	}

	mockTopicRepo.EXPECT().ReplaceSubscriptions(ctx, int64(7), topicIDs).Return(nil)

	mockAccountRepo.EXPECT().
		PatchPreference(ctx, int64(7), mock.AnythingOfType("*entity.PreferencePatch")).
		Run(func(_ context.Context, _ int64, patch *entity.PreferencePatch) {
			require.NotNil(t, patch.TopicSelection)
			assert.True(t, *patch.TopicSelection)
		}).
		Return(nil)

	mockTopicRepo.EXPECT().ListSubscriptions(ctx, int64(7)).Return(replaced, nil)

	subs, err := topicService.Subscribe(ctx, 7, &usecase.SubscribeInput{TopicIDs: topicIDs})
	require.NoError(t, err)
	assert.Equal(t, replaced, subs)
}

func TestTopicService_Subscribe_UnknownTopicFailsTransaction(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Topics().Return(mockTopicRepo)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()

	mockTopicRepo.EXPECT().
		ReplaceSubscriptions(ctx, int64(7), []int64{999}).
		Return(repository.ErrTopicNotFound)

	_, err := topicService.Subscribe(ctx, 7, &usecase.SubscribeInput{TopicIDs: []int64{999}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrTopicNotFound))
}

func TestTopicService_ListSubscriptions(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTopicRepo := mockRepo.NewMockTopicRepository(t)
	mockCache := mockSvc.NewMockTopicCache(t)

	topicService := NewTopicService(TopicServiceParams{
		TxManager:  mockTx,
		TopicRepo:  mockTopicRepo,
		TopicCache: mockCache,
		Logger:     testLogger(),
	})

	ctx := context.Background()
	subs := []*entity.TopicSubscription{
		{AccountID: 7, TopicID: 1, Topic: &entity.Topic{ID: 1, Name: "promo"}},
	}

	mockTopicRepo.EXPECT().ListSubscriptions(ctx, int64(7)).Return(subs, nil)

	got, err := topicService.ListSubscriptions(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, subs, got)
}
