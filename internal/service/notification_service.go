package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"civicpulse/internal/auth"
	"civicpulse/internal/errors"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
)

// NotificationService exposes the pull side of notification delivery.
type NotificationService interface {
	List(ctx context.Context, identity auth.Identity) ([]model.Notification, error)
	MarkRead(ctx context.Context, identity auth.Identity, id string) (*model.Notification, error)
	MarkAllRead(ctx context.Context, identity auth.Identity) (int64, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// List returns the caller's notifications, newest first.
func (s *notificationService) List(ctx context.Context, identity auth.Identity) ([]model.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, identity.ID)
}

// MarkRead flags one of the caller's notifications as read. A notification
// belonging to someone else matches zero rows and reads as not found, so
// its existence is not revealed.
func (s *notificationService) MarkRead(ctx context.Context, identity auth.Identity, id string) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindForUser(ctx, id, identity.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}

	if !notification.Read {
		if _, err := s.notificationRepo.MarkRead(ctx, id, identity.ID); err != nil {
			return nil, fmt.Errorf("mark notification read: %w", err)
		}
		notification.Read = true
	}
	return notification, nil
}

// MarkAllRead flags all of the caller's unread notifications as read and
// returns how many were matched. Calling it again matches zero.
func (s *notificationService) MarkAllRead(ctx context.Context, identity auth.Identity) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx, identity.ID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return count, nil
}
