package service

import (
	"context"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// NotificationService defines the use cases for the notification feed.
type NotificationService interface {
	ListByObra(ctx context.Context, obraID string) ([]model.Notification, error)

	// MarkRead flips is_read to true. Idempotent; unknown ids succeed.
	MarkRead(ctx context.Context, id string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListByObra(ctx context.Context, obraID string) ([]model.Notification, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}
	items, err := s.repo.ListByObra(ctx, obraID, NotificationListCap)
	if err != nil {
		return nil, err
	}
	if len(items) == NotificationListCap {
		warnTruncated("notifications", obraID, NotificationListCap)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.MarkRead(ctx, id)
}
