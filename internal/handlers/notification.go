package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=handlers

// NotificationLister lists the caller's notifications.
type NotificationLister interface {
	List(ctx context.Context, user *models.User) ([]models.NotificationDB, error)
}

// NewListNotificationsHandler returns the caller's newest notifications.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} models.ListNotificationsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /notifications [get]
// @Security CookieAuth
func NewListNotificationsHandler(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if list == nil {
			list = []models.NotificationDB{}
		}
		writeJSON(w, http.StatusOK, models.ListNotificationsResponse{Notifications: list})
	}
}
