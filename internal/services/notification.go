package services

import (
	"context"

	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=services

// NotificationListLimit caps the notifications returned at once.
const NotificationListLimit = 50

// NotificationReader lists notifications.
type NotificationReader interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.NotificationDB, error)
}

type NotificationService struct {
	notifications NotificationReader
}

func NewNotificationService(notifications NotificationReader) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns the caller's newest notifications.
func (s *NotificationService) List(ctx context.Context, user *models.User) ([]models.NotificationDB, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	list, err := s.notifications.ListByUser(ctx, user.ID, NotificationListLimit)
	if err != nil {
		return nil, internal("failed to list notifications", err)
	}
	return list, nil
}
