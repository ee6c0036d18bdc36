package impl

import (
	"context"
	"testing"
	"time"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	mockRepo "hub/internal/mocks/repository"
	"hub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLikeServiceForTest(t *testing.T) (usecase.LikeUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory, *mockRepo.MockLikeRepository) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockLikeRepo := mockRepo.NewMockLikeRepository(t)

	service := NewLikeService(LikeServiceParams{
		TxManager: mockTx,
		LikeRepo:  mockLikeRepo,
		Logger:    testLogger(),
	})

	return service, mockTx, mockFactory, mockLikeRepo
}

func TestLikeService_Toggle_FlipsToLike(t *testing.T) {
	service, mockTx, mockFactory, mockLikeRepo := newLikeServiceForTest(t)
	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Likes().Return(mockLikeRepo)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}

	mockLikeRepo.EXPECT().
		FindEvent(ctx, int64(7), key).
		Return(nil, repository.ErrLikeEventNotFound)

	mockLikeRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.LikeEvent")).
		Run(func(_ context.Context, event *entity.LikeEvent) {
			assert.Equal(t, int64(7), event.AccountID)
			assert.Equal(t, key, event.Key)
			assert.False(t, event.Timestamp.IsZero())
		}).
		Return(nil)

	mockLikeRepo.EXPECT().IncrementCounter(ctx, key).Return(int64(5), nil)

	result, err := service.Toggle(ctx, 7, &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionLike, result.Action)
	assert.Equal(t, int64(5), result.Total)
}

func TestLikeService_Toggle_FlipsToUnlike(t *testing.T) {
	service, mockTx, mockFactory, mockLikeRepo := newLikeServiceForTest(t)
	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Likes().Return(mockLikeRepo)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}
	likedAt := time.Now().Add(-time.Hour)

	mockLikeRepo.EXPECT().
		FindEvent(ctx, int64(7), key).
		Return(&entity.LikeEvent{AccountID: 7, Key: key, Timestamp: likedAt}, nil)

	mockLikeRepo.EXPECT().DeleteEvent(ctx, int64(7), key).Return(nil)
	mockLikeRepo.EXPECT().DecrementCounter(ctx, key).Return(int64(4), nil)

	result, err := service.Toggle(ctx, 7, &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionUnlike, result.Action)
	assert.Equal(t, int64(4), result.Total)
}

func TestLikeService_Toggle_ExplicitLikeIsIdempotent(t *testing.T) {
	service, mockTx, mockFactory, mockLikeRepo := newLikeServiceForTest(t)
	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Likes().Return(mockLikeRepo)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}
	state := entity.ActionLike

	// Already liked: an explicit "like" must not write, only report.
	mockLikeRepo.EXPECT().
		FindEvent(ctx, int64(7), key).
		Return(&entity.LikeEvent{AccountID: 7, Key: key}, nil)

	mockLikeRepo.EXPECT().GetTotal(ctx, key).Return(int64(9), nil)

	result, err := service.Toggle(ctx, 7, &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9", State: &state})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionLike, result.Action)
	assert.Equal(t, int64(9), result.Total)
}

func TestLikeService_Toggle_InsertRaceResolvedByReread(t *testing.T) {
	service, mockTx, mockFactory, mockLikeRepo := newLikeServiceForTest(t)
	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Likes().Return(mockLikeRepo)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}

	// Two identical likes race: this one loses the insert, the desired end
	// state already holds, so the call reports the winner's state.
	mockLikeRepo.EXPECT().
		FindEvent(ctx, int64(7), key).
		Return(nil, repository.ErrLikeEventNotFound)

	mockLikeRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.LikeEvent")).
		Return(repository.ErrDuplicateLikeEvent)

	mockLikeRepo.EXPECT().GetTotal(ctx, key).Return(int64(12), nil)

	result, err := service.Toggle(ctx, 7, &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionLike, result.Action)
	assert.Equal(t, int64(12), result.Total)
}

func TestLikeService_Toggle_DeleteRaceResolvedByReread(t *testing.T) {
	service, mockTx, mockFactory, mockLikeRepo := newLikeServiceForTest(t)
	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Likes().Return(mockLikeRepo)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}

	mockLikeRepo.EXPECT().
		FindEvent(ctx, int64(7), key).
		Return(&entity.LikeEvent{AccountID: 7, Key: key}, nil)

	mockLikeRepo.EXPECT().
		DeleteEvent(ctx, int64(7), key).
		Return(repository.ErrLikeEventNotFound)

	mockLikeRepo.EXPECT().GetTotal(ctx, key).Return(int64(3), nil)

	result, err := service.Toggle(ctx, 7, &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionUnlike, result.Action)
	assert.Equal(t, int64(3), result.Total)
}

func TestLikeService_Status_UnknownKeyIsZeroValued(t *testing.T) {
	service, _, _, mockLikeRepo := newLikeServiceForTest(t)

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-never-liked"}

	mockLikeRepo.EXPECT().
		GetStatuses(ctx, int64(7), "fnb", 2, []string{"prod-never-liked"}).
		Return([]*entity.LikeStatus{}, nil)

	status, err := service.Status(ctx, 7, key)
	require.NoError(t, err)
	assert.Equal(t, key, status.Key)
	assert.Equal(t, int64(0), status.Total)
	assert.False(t, status.Liked)
}

func TestLikeService_BatchStatus_PreservesRequestOrder(t *testing.T) {
	service, _, _, mockLikeRepo := newLikeServiceForTest(t)

	ctx := context.Background()
	productIDs := []string{"b", "a", "c"}
	expected := []*entity.LikeStatus{
		{Key: entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "b"}, Total: 2, Liked: true},
		{Key: entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "a"}},
		{Key: entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "c"}, Total: 7},
	}

	mockLikeRepo.EXPECT().
		GetStatuses(ctx, int64(7), "fnb", 2, productIDs).
		Return(expected, nil)

	statuses, err := service.BatchStatus(ctx, 7, "fnb", 2, productIDs)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, "b", statuses[0].Key.ProductID)
	assert.Equal(t, "a", statuses[1].Key.ProductID)
	assert.Equal(t, "c", statuses[2].Key.ProductID)
}
