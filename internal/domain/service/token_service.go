package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Verification errors surfaced by TokenService implementations.
var (
	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for a bad signature, issuer or audience.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenMalformed is returned for structurally invalid input.
	ErrTokenMalformed = errors.New("token is malformed")
)

// AccessClaims defines the claims carried by a signed access token.
// The token id (jti) is the device UUID so one account can hold distinct
// tokens per device.
type AccessClaims struct {
	AccountID  int64
	DeviceUUID string
	jwt.RegisteredClaims
}

// TokenService issues and verifies the short-lived signed access tokens and
// generates the opaque refresh tokens stored against device rows. It holds
// the signing secret loaded at construction and is otherwise stateless and
// safe for concurrent use.
type TokenService interface {
	// IssueAccessToken creates a signed access token for an account/device pair.
	IssueAccessToken(accountID int64, deviceUUID string) (string, error)

	// VerifyAccessToken validates a token string and returns its claims, or
	// one of ErrTokenExpired, ErrTokenInvalid, ErrTokenMalformed.
	VerifyAccessToken(tokenString string) (*AccessClaims, error)

	// NewRefreshToken generates an opaque 128-bit random refresh token and
	// its server-side expiry. Refresh tokens are never signed; they are
	// revocable state, not claims.
	NewRefreshToken() (token string, expiresAt time.Time)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration
}
