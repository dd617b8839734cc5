package port

import (
	"context"

	"lexconnect/internal/domain"
)

// NotificationRepository persists portal alerts.
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Create(ctx context.Context, n *domain.Notification) error
}
