package models

import "time"

// NotificationType is the informational category of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// NotificationDB represents a notification row.
type NotificationDB struct {
	ID                   int64            `json:"id" db:"id"`
	UserID               int64            `json:"user_id" db:"user_id"`
	Title                string           `json:"title" db:"title"`
	Message              string           `json:"message" db:"message"`
	Type                 NotificationType `json:"type" db:"type"`
	RelatedApplicationID *int64           `json:"related_application_id,omitempty" db:"related_application_id"`
	IsRead               bool             `json:"is_read" db:"is_read"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
}

// ListNotificationsResponse lists the caller's notifications
// swagger:model ListNotificationsResponse
type ListNotificationsResponse struct {
	Notifications []NotificationDB `json:"notifications"`
}
