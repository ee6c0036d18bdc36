package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hub/config"
	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/service"
	mockSvc "hub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		AppKey:          "shared-app-key",
		ClientUserAgent: "hub-app/1.0",
	}

	return cfg
}

func performRequest(m echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, c
}

func TestAuthMiddleware_Authenticate_SetsIdentityOnContext(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc, testConfig())

	mockTokenSvc.EXPECT().
		VerifyAccessToken("valid-token").
		Return(&service.AccessClaims{AccountID: 42, DeviceUUID: "device-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	var seenAccountID int64
	var seenDeviceUUID string

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		ctx := c.Request().Context()
		accountID, ok := deliverycontext.GetAccountID(ctx)
		require.True(t, ok)
		seenAccountID = accountID
		seenDeviceUUID = deliverycontext.GetDeviceUUID(ctx)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), seenAccountID)
	assert.Equal(t, "device-1", seenDeviceUUID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, _ := performRequest(m.Authenticate, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc, testConfig())

	mockTokenSvc.EXPECT().
		VerifyAccessToken("stale-token").
		Return(nil, service.ErrTokenExpired)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec, _ := performRequest(m.Authenticate, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_RequireAppKey_AcceptsMatchingCredentials(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer shared-app-key")
	req.Header.Set("User-Agent", "hub-app/1.0")
	rec, _ := performRequest(m.RequireAppKey, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireAppKey_RejectsWrongKeyOrAgent(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc, testConfig())

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer wrong-key")
		req.Header.Set("User-Agent", "hub-app/1.0")
		rec, _ := performRequest(m.RequireAppKey, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer shared-app-key")
		req.Header.Set("User-Agent", "curl/8.0")
		rec, _ := performRequest(m.RequireAppKey, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
