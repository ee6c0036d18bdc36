package middleware

import (
	"strings"

	"hub/config"
	deliverycontext "hub/internal/delivery/context"
	"hub/internal/delivery/http/response"
	"hub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for access-token authentication and the
// anonymous-registration app-key precheck.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the access token and stores the account id and
// device UUID on the request context for handlers and services.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "missing or malformed Authorization header")
		}

		claims, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, "TOKEN_EXPIRED", "token has expired")
			}

			return response.Unauthorized(c, "UNAUTHORIZED", "invalid token")
		}

		ctx := c.Request().Context()
		ctx = deliverycontext.WithAccountID(ctx, claims.AccountID)
		ctx = deliverycontext.WithDeviceUUID(ctx, claims.DeviceUUID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAppKey gates anonymous registration: the caller is not yet
// authenticated, so the shared app key and the expected client user agent
// must both match before an account may be created.
func (m *AuthMiddleware) RequireAppKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		appKey, ok := bearerToken(c)
		if !ok || appKey != m.cfg.Auth.AppKey {
			return response.Unauthorized(c, "UNAUTHORIZED", "invalid app key")
		}

		if m.cfg.Auth.ClientUserAgent != "" && c.Request().UserAgent() != m.cfg.Auth.ClientUserAgent {
			return response.Unauthorized(c, "UNAUTHORIZED", "unrecognized client")
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
