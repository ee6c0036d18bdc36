package repository

import (
	"context"

	"hub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines read access to authored notifications.
// Authoring happens in the admin dashboard outside this service.
type NotificationRepository interface {
	// ListRecent returns up to limit notifications, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Notification, error)

	// FindByID retrieves one notification by id.
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)
}
