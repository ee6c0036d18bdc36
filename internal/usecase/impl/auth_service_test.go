package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	mockRepo "hub/internal/mocks/repository"
	mockSvc "hub/internal/mocks/service"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx wires a MockTransactionManager so the transactional closure
// runs against the given factory, mimicking a committed transaction.
func passthroughTx(tx *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	tx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_FirstContact(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Accounts().Return(mockAccountRepo)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	refreshExpiry := time.Now().Add(30 * 24 * time.Hour)

	mockDeviceRepo.EXPECT().
		FindByUUID(ctx, "device-1").
		Return(nil, repository.ErrDeviceNotFound)

	mockAccountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "anonymous", account.SignUpType)
			account.ID = 42
		}).
		Return(nil)

	mockAccountRepo.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*entity.Preference")).
		Run(func(_ context.Context, pref *entity.Preference) {
			assert.Equal(t, int64(42), pref.AccountID)
			assert.Equal(t, "id", pref.Lang)
			assert.Equal(t, "0000", pref.Domain)
		}).
		Return(nil)

	mockDeviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			require.NotNil(t, device.AccountID)
			assert.Equal(t, int64(42), *device.AccountID)
			assert.Equal(t, "device-1", device.UUID)
			assert.False(t, device.FirstSeenAt.IsZero())
		}).
		Return(nil)

	mockTokenSvc.EXPECT().IssueAccessToken(int64(42), "device-1").Return("access-token", nil)
	mockTokenSvc.EXPECT().NewRefreshToken().Return("refresh-token", refreshExpiry)

	mockDeviceRepo.EXPECT().
		RotateTokens(ctx, int64(42), "device-1", "access-token", "refresh-token", refreshExpiry).
		Return(nil)

	mockAccountRepo.EXPECT().
		FindPreference(ctx, int64(42)).
		Return(&entity.Preference{AccountID: 42, Lang: "id", Domain: "0000"}, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{UUID: "device-1", OS: "android"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "id", output.Lang)
	assert.Equal(t, "0000", output.Domain)
	assert.False(t, output.TopicSelection)
}

func TestAuthService_Register_RepeatContactUpdates(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Accounts().Return(mockAccountRepo)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	accountID := int64(7)
	refreshExpiry := time.Now().Add(30 * 24 * time.Hour)

	mockDeviceRepo.EXPECT().
		FindByUUID(ctx, "device-1").
		Return(&entity.Device{ID: 1, AccountID: &accountID, UUID: "device-1"}, nil)

	mockAccountRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, SignUpType: "anonymous"}, nil)

	mockAccountRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "Alex", account.Name)
		}).
		Return(nil)

	lang := "en"
	mockAccountRepo.EXPECT().
		PatchPreference(ctx, accountID, mock.AnythingOfType("*entity.PreferencePatch")).
		Run(func(_ context.Context, _ int64, patch *entity.PreferencePatch) {
			require.NotNil(t, patch.Lang)
			assert.Equal(t, "en", *patch.Lang)
			assert.Nil(t, patch.Domain)
		}).
		Return(nil)

	mockDeviceRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "2.4.0", device.AppVersion)
		}).
		Return(nil)

	mockTokenSvc.EXPECT().IssueAccessToken(accountID, "device-1").Return("access-token", nil)
	mockTokenSvc.EXPECT().NewRefreshToken().Return("refresh-token", refreshExpiry)

	mockDeviceRepo.EXPECT().
		RotateTokens(ctx, accountID, "device-1", "access-token", "refresh-token", refreshExpiry).
		Return(nil)

	mockAccountRepo.EXPECT().
		FindPreference(ctx, accountID).
		Return(&entity.Preference{AccountID: accountID, Lang: "en", Domain: "0000", TopicSelection: true}, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		UUID:       "device-1",
		Name:       "Alex",
		AppVersion: "2.4.0",
		Lang:       &lang,
	})
	require.NoError(t, err)
	assert.Equal(t, "en", output.Lang)
	assert.True(t, output.TopicSelection)
}

func TestAuthService_Register_ClaimsOrphanedDevice(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Accounts().Return(mockAccountRepo)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	refreshExpiry := time.Now().Add(30 * 24 * time.Hour)

	// A device row without an owning account (e.g. seeded by an import) is
	// claimed with a fresh guest account rather than rejected.
	mockDeviceRepo.EXPECT().
		FindByUUID(ctx, "device-1").
		Return(&entity.Device{ID: 1, AccountID: nil, UUID: "device-1"}, nil)

	mockAccountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "anonymous", account.SignUpType)
			account.ID = 99
		}).
		Return(nil)

	mockAccountRepo.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*entity.Preference")).
		Run(func(_ context.Context, pref *entity.Preference) {
			assert.Equal(t, int64(99), pref.AccountID)
		}).
		Return(nil)

	mockDeviceRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			require.NotNil(t, device.AccountID)
			assert.Equal(t, int64(99), *device.AccountID)
		}).
		Return(nil)

	mockTokenSvc.EXPECT().IssueAccessToken(int64(99), "device-1").Return("access-token", nil)
	mockTokenSvc.EXPECT().NewRefreshToken().Return("refresh-token", refreshExpiry)

	mockDeviceRepo.EXPECT().
		RotateTokens(ctx, int64(99), "device-1", "access-token", "refresh-token", refreshExpiry).
		Return(nil)

	mockAccountRepo.EXPECT().
		FindPreference(ctx, int64(99)).
		Return(&entity.Preference{AccountID: 99, Lang: "id", Domain: "0000"}, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{UUID: "device-1"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Register_RetriesOnceOnInsertRace(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	// The loser of a concurrent first contact surfaces the unique-constraint
	// sentinel from its insert and must retry exactly once.
	calls := 0
	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, _ func(repository.RepositoryFactory) error) error {
			calls++

			return repository.ErrDuplicateDevice
		}).
		Twice()

	_, err := service.Register(ctx, &usecase.RegisterInput{UUID: "device-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDuplicateDevice))
	assert.Equal(t, 2, calls)
}

func TestAuthService_Refresh_RotatesTokenPair(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	accountID := int64(42)
	oldExpiry := time.Now().Add(time.Hour)
	newExpiry := time.Now().Add(30 * 24 * time.Hour)

	mockDeviceRepo.EXPECT().
		FindByRefreshToken(ctx, "old-refresh", "device-1").
		Return(&entity.Device{
			ID:                    1,
			AccountID:             &accountID,
			UUID:                  "device-1",
			RefreshToken:          "old-refresh",
			RefreshTokenExpiresAt: &oldExpiry,
		}, nil)

	mockTokenSvc.EXPECT().IssueAccessToken(accountID, "device-1").Return("new-access", nil)
	mockTokenSvc.EXPECT().NewRefreshToken().Return("new-refresh", newExpiry)

	mockDeviceRepo.EXPECT().
		RotateTokens(ctx, accountID, "device-1", "new-access", "new-refresh", newExpiry).
		Return(nil)

	output, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh", UUID: "device-1"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_UnknownTokenIsUnauthorized(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()

	// A rotated-away token no longer matches any row; the caller cannot tell
	// a revoked token from one that never existed.
	mockDeviceRepo.EXPECT().
		FindByRefreshToken(ctx, "stale-refresh", "device-1").
		Return(nil, repository.ErrDeviceNotFound)

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-refresh", UUID: "device-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	passthroughTx(mockTx, mockFactory)
	mockFactory.EXPECT().Devices().Return(mockDeviceRepo)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTx,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	accountID := int64(42)
	pastExpiry := time.Now().Add(-time.Hour)

	mockDeviceRepo.EXPECT().
		FindByRefreshToken(ctx, "old-refresh", "device-1").
		Return(&entity.Device{
			ID:                    1,
			AccountID:             &accountID,
			UUID:                  "device-1",
			RefreshTokenExpiresAt: &pastExpiry,
		}, nil)

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh", UUID: "device-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}
