// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/constants"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	"hub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// signUpTypeAnonymous is the sign-up type recorded for guest accounts created
// implicitly on first device contact.
const signUpTypeAnonymous = "anonymous"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates anonymous device registration: the account and device
// rows are created or updated in one transaction and a fresh token pair is
// issued. A concurrent first contact for the same UUID loses the insert race
// on the unique device uuid index; that loser retries exactly once and lands
// on the update branch.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting device registration", slog.String("uuid", input.UUID))

	output, err := srv.registerOnce(ctx, input)
	if errors.Is(err, repository.ErrDuplicateDevice) {
		srv.log(ctx).Debug("Concurrent registration detected, retrying once", slog.String("uuid", input.UUID))

		output, err = srv.registerOnce(ctx, input)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("uuid", input.UUID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute device registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("uuid", input.UUID))

	return output, nil
}

func (srv *authService) registerOnce(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	var output *usecase.RegisterOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.Devices()
		accountRepo := repoFactory.Accounts()

		device, err := deviceRepo.FindByUUID(ctx, input.UUID)
		if errors.Is(err, repository.ErrDeviceNotFound) {
			device, err = srv.createAccountAndDevice(ctx, input, accountRepo, deviceRepo)
		} else if err == nil {
			err = srv.updateAccountAndDevice(ctx, input, device, accountRepo, deviceRepo)
		}
		if err != nil {
			return err
		}
		accountID := *device.AccountID

		accessToken, refreshToken, err := srv.issueAndStoreTokens(ctx, deviceRepo, accountID, input.UUID)
		if err != nil {
			return err
		}

		pref, err := accountRepo.FindPreference(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to load preference after registration")
		}

		output = &usecase.RegisterOutput{
			AccessToken:    accessToken,
			RefreshToken:   refreshToken,
			Lang:           pref.Lang,
			Domain:         pref.Domain,
			TopicSelection: pref.TopicSelection,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// createGuestAccount inserts a guest account together with its default
// preference row and returns it.
func (srv *authService) createGuestAccount(
	ctx context.Context,
	input *usecase.RegisterInput,
	accountRepo repository.AccountRepository,
) (*entity.Account, error) {
	signUpType := input.SignUpType
	if signUpType == "" {
		signUpType = signUpTypeAnonymous
	}

	account := &entity.Account{
		Email:      input.Email,
		Name:       input.Name,
		SignUpType: signUpType,
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	pref := buildDefaultPreference(account.ID, input)
	if err := accountRepo.CreatePreference(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to create preference during registration")
	}

	return account, nil
}

// createAccountAndDevice handles the first-contact branch: a guest account,
// its default preference row and the device row are inserted together.
func (srv *authService) createAccountAndDevice(
	ctx context.Context,
	input *usecase.RegisterInput,
	accountRepo repository.AccountRepository,
	deviceRepo repository.DeviceRepository,
) (*entity.Device, error) {
	account, err := srv.createGuestAccount(ctx, input, accountRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	device := &entity.Device{
		AccountID:    &account.ID,
		UUID:         input.UUID,
		Manufacturer: input.Manufacturer,
		Model:        input.DeviceModel,
		OS:           input.OS,
		OSVersion:    input.OSVersion,
		IsVirtual:    input.IsVirtual,
		AppVersion:   input.AppVersion,
		LastIP:       input.LastIP,
		PushToken:    input.PushToken,
		FirstSeenAt:  now,
		LastSeenAt:   now,
	}
	// ErrDuplicateDevice propagates untouched so the caller can retry.
	if err := deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// updateAccountAndDevice handles the repeat-contact branch: profile and
// preference fields present in the request overwrite stored values, absent
// fields are left alone. A device row without an owning account, e.g. seeded
// by a data import, is claimed with a fresh guest account instead.
func (srv *authService) updateAccountAndDevice(
	ctx context.Context,
	input *usecase.RegisterInput,
	device *entity.Device,
	accountRepo repository.AccountRepository,
	deviceRepo repository.DeviceRepository,
) error {
	if device.AccountID == nil {
		account, err := srv.createGuestAccount(ctx, input, accountRepo)
		if err != nil {
			return err
		}
		device.AccountID = &account.ID
	} else if err := srv.updateAccountAndPreference(ctx, input, *device.AccountID, accountRepo); err != nil {
		return err
	}

	device.Manufacturer = input.Manufacturer
	device.Model = input.DeviceModel
	device.OS = input.OS
	device.OSVersion = input.OSVersion
	device.IsVirtual = input.IsVirtual
	device.AppVersion = input.AppVersion
	device.LastIP = input.LastIP
	device.PushToken = input.PushToken
	if err := deviceRepo.UpdateProfile(ctx, device); err != nil {
		return errors.Wrap(err, "failed to update device during registration")
	}

	return nil
}

// updateAccountAndPreference applies the profile and preference fields
// present in the request to the owning account.
func (srv *authService) updateAccountAndPreference(
	ctx context.Context,
	input *usecase.RegisterInput,
	accountID int64,
	accountRepo repository.AccountRepository,
) error {
	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return errors.Wrap(err, "failed to load account during registration")
	}

	changed := false
	if input.Email != nil {
		account.Email = input.Email
		changed = true
	}
	if input.Name != "" {
		account.Name = input.Name
		changed = true
	}
	if input.SignUpType != "" {
		account.SignUpType = input.SignUpType
		changed = true
	}
	if changed {
		if err := accountRepo.UpdateProfile(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account during registration")
		}
	}

	patch := &entity.PreferencePatch{
		Lang:           input.Lang,
		Domain:         input.Domain,
		TopicSelection: input.TopicSelection,
	}
	if !patch.IsEmpty() {
		if err := accountRepo.PatchPreference(ctx, account.ID, patch); err != nil {
			return errors.Wrap(err, "failed to patch preference during registration")
		}
	}

	return nil
}

// issueAndStoreTokens creates a fresh token pair and persists it on the
// device row, invalidating whatever refresh token was stored before.
func (srv *authService) issueAndStoreTokens(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	accountID int64,
	deviceUUID string,
) (string, string, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(accountID, deviceUUID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, refreshExpiresAt := srv.tokenService.NewRefreshToken()

	if err := deviceRepo.RotateTokens(ctx, accountID, deviceUUID, accessToken, refreshToken, refreshExpiresAt); err != nil {
		return "", "", errors.Wrap(err, "failed to store rotated tokens")
	}

	return accessToken, refreshToken, nil
}

// Refresh rotates the session identified by the presented refresh token. The
// lookup and the overwrite share one transaction, so of two concurrent
// presentations of the same token exactly one succeeds.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to rotate session", slog.String("uuid", input.UUID))

	var output *usecase.RefreshOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.Devices()

		device, err := deviceRepo.FindByRefreshToken(ctx, input.RefreshToken, input.UUID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "refresh token not recognized")
			}

			return errors.Wrap(err, "failed to look up refresh token")
		}

		if device.RefreshTokenExpiresAt == nil || time.Now().After(*device.RefreshTokenExpiresAt) {
			return errors.Wrap(domainerrors.ErrTokenExpired, "refresh token expired")
		}
		if device.AccountID == nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "device has no owning account")
		}

		accessToken, refreshToken, err := srv.issueAndStoreTokens(ctx, deviceRepo, *device.AccountID, device.UUID)
		if err != nil {
			return err
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Session rotation failed", slog.String("uuid", input.UUID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	srv.log(ctx).Debug("Session rotated", slog.String("uuid", input.UUID))

	return output, nil
}

// buildDefaultPreference applies registration-time defaults, letting explicit
// request values win over them.
func buildDefaultPreference(accountID int64, input *usecase.RegisterInput) *entity.Preference {
	pref := &entity.Preference{
		AccountID: accountID,
		Lang:      constants.DefaultLanguage,
		Domain:    constants.DefaultRegion,
	}
	if input.Lang != nil {
		pref.Lang = *input.Lang
	}
	if input.Domain != nil {
		pref.Domain = *input.Domain
	}
	if input.TopicSelection != nil {
		pref.TopicSelection = *input.TopicSelection
	}

	return pref
}
