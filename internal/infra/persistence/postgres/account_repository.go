package postgres

import (
	"context"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account and fills in the generated values.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves an account by its numeric id.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account by its unique email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// UpdateProfile persists the mutable profile fields of an existing account.
func (repo *accountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"email":        account.Email,
			"name":         account.Name,
			"sign_up_type": account.SignUpType,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAccount
		}

		return errors.Wrap(result.Error, "failed to update account profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// CreatePreference persists the preference row for a freshly created account.
func (repo *accountRepository) CreatePreference(ctx context.Context, pref *entity.Preference) error {
	prefM := fromPreferenceDomain(pref)

	if err := repo.db.WithContext(ctx).Create(prefM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to create preference")
	}

	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// FindPreference retrieves the preference row for an account.
func (repo *accountRepository) FindPreference(ctx context.Context, accountID int64) (*entity.Preference, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference")
	}

	return toPreferenceDomain(&prefM), nil
}

// PatchPreference applies a partial preference update. Nil patch fields are
// not written at all, so absent request values never clobber stored state.
func (repo *accountRepository) PatchPreference(ctx context.Context, accountID int64, patch *entity.PreferencePatch) error {
	if patch.IsEmpty() {
		return nil
	}

	updates := make(map[string]any, 3)
	if patch.Lang != nil {
		updates["lang"] = *patch.Lang
	}
	if patch.Domain != nil {
		updates["domain"] = *patch.Domain
	}
	if patch.TopicSelection != nil {
		updates["topic_selection"] = *patch.TopicSelection
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PreferenceModel{}).
		Where("account_id = ?", accountID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to patch preference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		SignUpType: data.SignUpType,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		SignUpType: data.SignUpType,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toPreferenceDomain converts a GORM PreferenceModel to a domain Preference entity.
func toPreferenceDomain(data *model.PreferenceModel) *entity.Preference {
	if data == nil {
		return nil
	}

	return &entity.Preference{
		AccountID:      data.AccountID,
		Lang:           data.Lang,
		Domain:         data.Domain,
		TopicSelection: data.TopicSelection,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain Preference entity to a GORM PreferenceModel.
func fromPreferenceDomain(data *entity.Preference) *model.PreferenceModel {
	if data == nil {
		return nil
	}

	return &model.PreferenceModel{
		AccountID:      data.AccountID,
		Lang:           data.Lang,
		Domain:         data.Domain,
		TopicSelection: data.TopicSelection,
		UpdatedAt:      data.UpdatedAt,
	}
}
