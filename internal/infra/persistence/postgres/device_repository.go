package postgres

import (
	"context"
	"time"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device row. The unique index on uuid turns a
// concurrent first-contact race into ErrDuplicateDevice, which the caller
// resolves by retrying its lookup.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByUUID retrieves the device row for a client-generated UUID.
func (repo *deviceRepository) FindByUUID(ctx context.Context, deviceUUID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", deviceUUID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by UUID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByRefreshToken retrieves the device row matching the presented refresh
// token and UUID pair. A rotated-away token no longer matches any row.
func (repo *deviceRepository) FindByRefreshToken(ctx context.Context, refreshToken, deviceUUID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("refresh_token = ? AND uuid = ?", refreshToken, deviceUUID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by refresh token")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdateProfile persists the hardware/software metadata fields and bumps the
// last-seen timestamp for an existing device.
func (repo *deviceRepository) UpdateProfile(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"manufacturer": device.Manufacturer,
			"model":        device.Model,
			"os":           device.OS,
			"os_version":   device.OSVersion,
			"is_virtual":   device.IsVirtual,
			"app_version":  device.AppVersion,
			"last_ip":      device.LastIP,
			"push_token":   device.PushToken,
			"last_seen_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// RotateTokens overwrites the session credentials for the unique
// (account, uuid) row. The previous refresh token stops matching
// FindByRefreshToken the moment this commits.
func (repo *deviceRepository) RotateTokens(ctx context.Context, accountID int64, deviceUUID, accessToken, refreshToken string, refreshExpiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("account_id = ? AND uuid = ?", accountID, deviceUUID).
		Updates(map[string]any{
			"access_token":             accessToken,
			"refresh_token":            refreshToken,
			"refresh_token_expires_at": refreshExpiresAt,
			"last_seen_at":             time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to rotate device tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ListPushTokens returns every non-empty push token, optionally restricted to
// devices whose account subscribes to topicID.
func (repo *deviceRepository) ListPushTokens(ctx context.Context, topicID *int64) ([]string, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("devices.push_token <> ''")

	if topicID != nil {
		query = query.
			Joins("JOIN topic_subscriptions ON topic_subscriptions.account_id = devices.account_id").
			Where("topic_subscriptions.topic_id = ?", *topicID)
	}

	var tokens []string
	if err := query.
		Distinct().
		Pluck("devices.push_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push tokens")
	}

	return tokens, nil
}

// ClearPushTokens removes push tokens the gateway reported as invalid.
func (repo *deviceRepository) ClearPushTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("push_token IN ?", tokens).
		Update("push_token", "").Error; err != nil {
		return errors.Wrap(err, "failed to clear push tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                    data.ID,
		AccountID:             data.AccountID,
		UUID:                  data.UUID,
		Manufacturer:          data.Manufacturer,
		Model:                 data.Model,
		OS:                    data.OS,
		OSVersion:             data.OSVersion,
		IsVirtual:             data.IsVirtual,
		AppVersion:            data.AppVersion,
		LastIP:                data.LastIP,
		PushToken:             data.PushToken,
		AccessToken:           data.AccessToken,
		RefreshToken:          data.RefreshToken,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		FirstSeenAt:           data.FirstSeenAt,
		LastSeenAt:            data.LastSeenAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                    data.ID,
		AccountID:             data.AccountID,
		UUID:                  data.UUID,
		Manufacturer:          data.Manufacturer,
		Model:                 data.Model,
		OS:                    data.OS,
		OSVersion:             data.OSVersion,
		IsVirtual:             data.IsVirtual,
		AppVersion:            data.AppVersion,
		LastIP:                data.LastIP,
		PushToken:             data.PushToken,
		AccessToken:           data.AccessToken,
		RefreshToken:          data.RefreshToken,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		FirstSeenAt:           data.FirstSeenAt,
		LastSeenAt:            data.LastSeenAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
