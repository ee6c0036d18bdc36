package impl

import (
	"context"
	"sync"
	"testing"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceWithFakeStore(store *fakeStore) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{store: store},
		TokenService: &fakeTokenService{},
		Logger:       testLogger(),
	})
}

func TestAuthService_ConcurrentFirstContact_CreatesOneAccount(t *testing.T) {
	store := newFakeStore()

	// Hold both registrations at the missed lookup so each decides to create
	// before either has inserted; only the unique device uuid index can then
	// keep the store down to one row per UUID.
	var gate sync.WaitGroup
	gate.Add(2)
	store.deviceLookupGate = func() {
		gate.Done()
		gate.Wait()
	}

	authService := newAuthServiceWithFakeStore(store)

	ctx := context.Background()
	outputs := make([]*usecase.RegisterOutput, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = authService.Register(ctx, &usecase.RegisterInput{UUID: "abc-123", OS: "android"})
		}(i)
	}
	wg.Wait()

	// The loser retries onto the update branch, so both callers walk away
	// with working credentials.
	for i := range errs {
		require.NoError(t, errs[i], "registration %d", i)
		require.NotNil(t, outputs[i])
		assert.NotEmpty(t, outputs[i].AccessToken)
		assert.NotEmpty(t, outputs[i].RefreshToken)
	}

	assert.Len(t, store.accounts, 1)
	assert.Len(t, store.preferences, 1)
	assert.Len(t, store.devicesByUUID, 1)
}

func TestAuthService_ReRegistration_PreservesAccountAndInvalidatesOldToken(t *testing.T) {
	store := newFakeStore()
	authService := newAuthServiceWithFakeStore(store)

	ctx := context.Background()

	first, err := authService.Register(ctx, &usecase.RegisterInput{UUID: "abc-123"})
	require.NoError(t, err)

	second, err := authService.Register(ctx, &usecase.RegisterInput{UUID: "abc-123", AppVersion: "2.4.0"})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	assert.Len(t, store.accounts, 1)
	assert.Equal(t, "2.4.0", store.devicesByUUID["abc-123"].AppVersion)

	_, err = authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: first.RefreshToken, UUID: "abc-123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: second.RefreshToken, UUID: "abc-123"})
	require.NoError(t, err)
}

func TestAuthService_Refresh_RotatedTokenIsSingleUse(t *testing.T) {
	store := newFakeStore()
	authService := newAuthServiceWithFakeStore(store)

	ctx := context.Background()

	registered, err := authService.Register(ctx, &usecase.RegisterInput{UUID: "abc-123"})
	require.NoError(t, err)

	rotated, err := authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: registered.RefreshToken, UUID: "abc-123"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, rotated.RefreshToken)

	// The consumed token was overwritten by the rotation and matches no row.
	_, err = authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: registered.RefreshToken, UUID: "abc-123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: rotated.RefreshToken, UUID: "abc-123"})
	require.NoError(t, err)
}

func TestLikeService_ConcurrentDistinctLikers_NoLostUpdates(t *testing.T) {
	store := newFakeStore()

	likeService := NewLikeService(LikeServiceParams{
		TxManager: &fakeTxManager{store: store},
		LikeRepo:  &fakeLikeRepo{store: store},
		Logger:    testLogger(),
	})

	ctx := context.Background()
	key := entity.LikeKey{MFD: "fnb", ProductType: 2, ProductID: "prod-9"}

	const likers = 16
	errs := make([]error, likers)

	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = likeService.Toggle(ctx, int64(i+1), &usecase.ToggleLikeInput{MFD: "fnb", ProductType: 2, ProductID: "prod-9"})
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i], "liker %d", i)
	}

	total, err := (&fakeLikeRepo{store: store}).GetTotal(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(likers), total)
	assert.Len(t, store.likeEvents[likeKeyString(key)], likers)
}
