package notificationRepo

import (
	"context"

	"servicehub/models"
)

// NotificationRepository defines methods for in-app notification storage.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (*models.Notification, error)
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.Notification, error)
	// MarkRead flags one notification; another user's id yields models.ErrNotFound.
	MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error)
	// MarkAllRead flags every unread notification and returns how many changed.
	MarkAllRead(ctx context.Context, userID int64) (int, error)
}
