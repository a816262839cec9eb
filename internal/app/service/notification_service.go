package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// visibleTo reports whether a notification belongs in the caller's feed:
// admins see everything, users see their own rows plus broadcasts.
func visibleTo(n model.Notification, userID string, role model.Role) bool {
	if role == model.RoleAdmin {
		return true
	}
	return n.UserID == userID || n.UserID == ""
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, role model.Role) []model.Notification {
	visible := []model.Notification{}
	for _, notification := range s.notificationRepo.List(ctx) {
		if visibleTo(notification, userID, role) {
			visible = append(visible, notification)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("notification not found: %w", common.ErrNotFound)
	}
	notification.Read = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string, role model.Role) error {
	notifications := s.notificationRepo.List(ctx)
	for i := range notifications {
		if visibleTo(notifications[i], userID, role) {
			notifications[i].Read = true
		}
	}
	if err := s.notificationRepo.ReplaceAll(ctx, notifications); err != nil {
		return fmt.Errorf("failed to update notifications: %w", err)
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("notification not found: %w", common.ErrNotFound)
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string, role model.Role) int {
	count := 0
	for _, notification := range s.notificationRepo.List(ctx) {
		if !notification.Read && visibleTo(notification, userID, role) {
			count++
		}
	}
	return count
}
