package service

import (
	"context"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

// NotificationService manages the header dropdown alerts. Listings are
// always scoped to the owning user; there is no cross-user view.
type NotificationService interface {
	List(ctx context.Context, ident *domain.Identity) ([]domain.Notification, error)
	MarkRead(ctx context.Context, ident *domain.Identity, id string) error
	MarkAllRead(ctx context.Context, ident *domain.Identity) error
	Notify(ctx context.Context, n *domain.Notification) error
}

type notificationService struct {
	repo port.NotificationRepository
}

// NewNotificationService creates a new NotificationService implementation.
func NewNotificationService(repo port.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, ident *domain.Identity) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, ident.ID)
}

func (s *notificationService) MarkRead(ctx context.Context, ident *domain.Identity, id string) error {
	return s.repo.MarkRead(ctx, ident.ID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, ident *domain.Identity) error {
	return s.repo.MarkAllRead(ctx, ident.ID)
}

func (s *notificationService) Notify(ctx context.Context, n *domain.Notification) error {
	return s.repo.Create(ctx, n)
}
