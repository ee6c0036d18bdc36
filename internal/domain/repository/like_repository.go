package repository

import (
	"context"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for like persistence. Both signal that a concurrent
// request already performed the same toggle; the engine resolves them by
// re-reading the counter instead of surfacing a storage error.
var (
	// ErrLikeEventNotFound is returned when no like event exists for the key.
	ErrLikeEventNotFound = errors.New("like event not found")
	// ErrDuplicateLikeEvent is returned when the like event already exists.
	ErrDuplicateLikeEvent = errors.New("like event already exists")
)

// LikeRepository defines like-event and counter database operations.
type LikeRepository interface {
	// FindEvent retrieves the caller's like event for a key, or
	// ErrLikeEventNotFound.
	FindEvent(ctx context.Context, accountID int64, key entity.LikeKey) (*entity.LikeEvent, error)

	// CreateEvent inserts a like event; ErrDuplicateLikeEvent on the unique
	// (account, key) constraint.
	CreateEvent(ctx context.Context, event *entity.LikeEvent) error

	// DeleteEvent removes a like event; ErrLikeEventNotFound when no row
	// matched.
	DeleteEvent(ctx context.Context, accountID int64, key entity.LikeKey) error

	// IncrementCounter upserts the counter row for key: created with total=1
	// or incremented by 1. Returns the new total.
	IncrementCounter(ctx context.Context, key entity.LikeKey) (int64, error)

	// DecrementCounter upserts the counter row for key: created with total=0
	// (the row did not exist yet) or decremented by 1. Returns the new total.
	DecrementCounter(ctx context.Context, key entity.LikeKey) (int64, error)

	// GetTotal returns the aggregate total for key, 0 when no row exists.
	GetTotal(ctx context.Context, key entity.LikeKey) (int64, error)

	// GetStatuses returns counter totals joined with the caller's own like
	// events for a batch of items sharing one dimension and category.
	GetStatuses(ctx context.Context, accountID int64, mfd string, productType int, productIDs []string) ([]*entity.LikeStatus, error)
}
