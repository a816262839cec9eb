package repository

import (
	"context"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
)

type NotificationRepository interface {
	List(ctx context.Context) []model.Notification
	FindByID(ctx context.Context, id string) (*model.Notification, error)
	Create(ctx context.Context, notification *model.Notification) error
	CreateBatch(ctx context.Context, notifications []model.Notification) error
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, notifications []model.Notification) error
	Seed(ctx context.Context) error
}

type jsonNotificationRepository struct {
	notifications *storage.Collection[model.Notification]
}

func NewJSONNotificationRepository(backend storage.Backend, log zerolog.Logger) NotificationRepository {
	return &jsonNotificationRepository{
		notifications: storage.NewCollection[model.Notification](backend, "notifications", log),
	}
}

func (r *jsonNotificationRepository) List(ctx context.Context) []model.Notification {
	return r.notifications.Read()
}

func (r *jsonNotificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	notification, ok := r.notifications.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	return &notification, nil
}

func (r *jsonNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.CreateBatch(ctx, []model.Notification{*notification})
}

// CreateBatch appends all records in one write so an alert fan-out is a
// single read-modify-write cycle, not one per recipient.
func (r *jsonNotificationRepository) CreateBatch(ctx context.Context, batch []model.Notification) error {
	notifications := r.notifications.Read()
	return r.notifications.Write(append(notifications, batch...))
}

func (r *jsonNotificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	notifications := r.notifications.Read()
	index := -1
	for i := range notifications {
		if notifications[i].ID == notification.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return common.ErrNotFound
	}
	notifications[index] = *notification
	return r.notifications.Write(notifications)
}

func (r *jsonNotificationRepository) Delete(ctx context.Context, id string) error {
	notifications := r.notifications.Read()
	filtered := make([]model.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID != id {
			filtered = append(filtered, notification)
		}
	}
	if len(filtered) == len(notifications) {
		return common.ErrNotFound
	}
	return r.notifications.Write(filtered)
}

func (r *jsonNotificationRepository) ReplaceAll(ctx context.Context, notifications []model.Notification) error {
	return r.notifications.Write(notifications)
}

func (r *jsonNotificationRepository) Seed(ctx context.Context) error {
	if len(r.notifications.Read()) > 0 {
		return nil
	}
	return r.notifications.Write([]model.Notification{
		{
			ID:        "1",
			UserID:    "2",
			Title:     "Welcome to ResQConnect!",
			Message:   "Thank you for registering. Stay safe and informed.",
			Type:      model.NotificationInfo,
			Read:      false,
			CreatedAt: time.Now(),
		},
	})
}
