// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when a unique account constraint is violated.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrPreferenceNotFound is returned when an account has no preference row.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// AccountRepository defines account and preference database operations.
// Preference is one-to-one owned by Account, so both live behind one contract.
type AccountRepository interface {
	// Create persists a new account and fills in the generated id.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its numeric id.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves an account by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// UpdateProfile persists the mutable profile fields (name, email,
	// sign-up type) of an existing account.
	UpdateProfile(ctx context.Context, account *entity.Account) error

	// CreatePreference persists the preference row for a freshly created account.
	CreatePreference(ctx context.Context, pref *entity.Preference) error

	// FindPreference retrieves the preference row for an account.
	FindPreference(ctx context.Context, accountID int64) (*entity.Preference, error)

	// PatchPreference applies a partial preference update. Nil patch fields
	// leave the stored value untouched.
	PatchPreference(ctx context.Context, accountID int64, patch *entity.PreferencePatch) error
}
