package repository

import (
	"context"
	"time"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a device row with the same uuid
	// already exists. The upsert coordinator treats this as a concurrent
	// create collision and retries once.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines device and session-rotation database operations.
type DeviceRepository interface {
	// Create persists a new device row and fills in the generated id.
	Create(ctx context.Context, device *entity.Device) error

	// FindByUUID retrieves the device row for a client-generated UUID.
	FindByUUID(ctx context.Context, deviceUUID string) (*entity.Device, error)

	// FindByRefreshToken retrieves the device row matching the presented
	// refresh token and UUID pair. A miss means the token was never issued
	// or has already been rotated away.
	FindByRefreshToken(ctx context.Context, refreshToken, deviceUUID string) (*entity.Device, error)

	// UpdateProfile persists the hardware/software metadata fields and
	// bumps the last-seen timestamp for an existing device.
	UpdateProfile(ctx context.Context, device *entity.Device) error

	// RotateTokens overwrites the stored access token, refresh token and
	// refresh expiry for the unique (account, uuid) row. The previous
	// refresh token value becomes unusable the moment this commits.
	RotateTokens(ctx context.Context, accountID int64, deviceUUID, accessToken, refreshToken string, refreshExpiresAt time.Time) error

	// ListPushTokens returns every non-empty push-messaging token,
	// optionally restricted to devices whose account subscribes to topicID.
	ListPushTokens(ctx context.Context, topicID *int64) ([]string, error)

	// ClearPushTokens removes push tokens the gateway reported as invalid.
	ClearPushTokens(ctx context.Context, tokens []string) error
}
