package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNotificationLister(ctrl)
	appID := int64(55)
	mockSvc.EXPECT().List(gomock.Any(), employer).Return([]models.NotificationDB{
		{ID: 1, UserID: 1, Title: "New Application", Type: models.NotificationInfo, RelatedApplicationID: &appID},
	}, nil)

	rr := serve(http.MethodGet, "/notifications", "/notifications", nil, employer, NewListNotificationsHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody(t, rr)["notifications"].([]any)
	require.Len(t, list, 1)
	n := list[0].(map[string]any)
	assert.Equal(t, "New Application", n["title"])
	assert.Equal(t, "info", n["type"])
	assert.Equal(t, float64(55), n["related_application_id"])

	mockSvc.EXPECT().List(gomock.Any(), nil).Return(nil, services.ErrUnauthenticated)
	rr = serve(http.MethodGet, "/notifications", "/notifications", nil, nil, NewListNotificationsHandler(mockSvc))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
