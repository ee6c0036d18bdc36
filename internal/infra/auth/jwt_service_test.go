package auth

import (
	"testing"
	"time"

	"hub/config"
	"hub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		SigningSecret:   "test_signing_secret_key_very_long_for_testing",
		Issuer:          "https://hub.example.org",
		Audience:        "hub-mobile",
		AccessTokenTTL:  3 * time.Hour,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, svc)

	deviceUUID := uuid.NewString()

	token, err := svc.IssueAccessToken(42, deviceUUID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, deviceUUID, claims.DeviceUUID)
	assert.Equal(t, "https://hub.example.org", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(3*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_DistinctTokensPerDevice(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	tokenA, err := svc.IssueAccessToken(7, "device-a")
	require.NoError(t, err)
	tokenB, err := svc.IssueAccessToken(7, "device-b")
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)
}

func TestJWTService_VerifyMalformed(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(42, uuid.NewString())
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_VerifyWrongAudience(t *testing.T) {
	issuing := newTestConfig()
	issuing.Auth.Audience = "some-other-app"
	issuer, err := NewJWTService(issuing)
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(42, uuid.NewString())
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := verifier.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyWrongSignature(t *testing.T) {
	issuing := newTestConfig()
	issuing.Auth.SigningSecret = "a_completely_different_secret_key_for_testing"
	issuer, err := NewJWTService(issuing)
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(42, uuid.NewString())
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := verifier.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_NewRefreshToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, expiresAt := svc.NewRefreshToken()
	assert.Len(t, token, 32) // 128 bits, hex encoded
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, time.Minute)

	other, _ := svc.NewRefreshToken()
	assert.NotEqual(t, token, other)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.SigningSecret = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "signing secret")
}
