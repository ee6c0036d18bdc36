// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"hub/config"
	"hub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// refreshTokenBytes is the entropy of an opaque refresh token (128 bits).
const refreshTokenBytes = 16

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte        // Secret key for signing access tokens.
	issuer     string        // Expected iss claim.
	audience   string        // Expected aud claim.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Server-side time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SigningSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if cfg.Auth.Issuer == "" || cfg.Auth.Audience == "" {
		return nil, errors.New("jwt issuer and audience must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.SigningSecret),
		issuer:     cfg.Auth.Issuer,
		audience:   cfg.Auth.Audience,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccessToken creates a signed access token for an account/device pair.
// The token id (jti) carries the device UUID so tokens for the same account
// stay distinct per device.
func (s *jwtService) IssueAccessToken(accountID int64, deviceUUID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		Subject:   strconv.FormatInt(accountID, 10),
		ID:        deviceUUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// VerifyAccessToken validates a token string and returns its claims.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	var registered jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classifyVerifyError(err)
	}

	accountID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "subject is not a numeric account id")
	}

	return &service.AccessClaims{
		AccountID:        accountID,
		DeviceUUID:       registered.ID,
		RegisteredClaims: registered,
	}, nil
}

// NewRefreshToken generates an opaque random refresh token with its expiry.
func (s *jwtService) NewRefreshToken() (string, time.Time) {
	buf := make([]byte, refreshTokenBytes)
	// rand.Read never fails on supported platforms; it panics internally otherwise.
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf), time.Now().Add(s.refreshTTL)
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// classifyVerifyError maps jwt library failures onto the domain error set.
func classifyVerifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
}
