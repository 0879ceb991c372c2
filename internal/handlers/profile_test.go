package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSaveSeekerProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSeekerProfileSaver(ctrl)
	location := "Berlin"
	mockSvc.EXPECT().SaveSeekerProfile(gomock.Any(), seeker, models.SeekerProfileRequest{Name: "Sam", Location: &location}).
		Return(&models.SeekerProfileDB{UserID: 3, Name: "Sam", Location: &location}, nil)

	rr := serve(http.MethodPut, "/seeker/profile", "/seeker/profile", []byte(`{"name":"Sam","location":"Berlin"}`),
		seeker, NewSaveSeekerProfileHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, "Profile saved", resp["message"])
	assert.Equal(t, "Sam", resp["profile"].(map[string]any)["name"])

	rr = serve(http.MethodPut, "/seeker/profile", "/seeker/profile", []byte(`{"location":"Berlin"}`),
		seeker, NewSaveSeekerProfileHandler(mockSvc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetSeekerProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSeekerProfileGetter(ctrl)
	mockSvc.EXPECT().GetSeekerProfile(gomock.Any(), seeker).Return(&models.SeekerProfileDB{UserID: 3, Name: "Sam"}, nil)

	rr := serve(http.MethodGet, "/seeker/profile", "/seeker/profile", nil, seeker, NewGetSeekerProfileHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, "Sam", resp["profile"].(map[string]any)["name"])
	_, hasMessage := resp["message"]
	assert.False(t, hasMessage)

	mockSvc.EXPECT().GetSeekerProfile(gomock.Any(), seeker).Return(nil, services.ErrProfileNotFound)
	rr = serve(http.MethodGet, "/seeker/profile", "/seeker/profile", nil, seeker, NewGetSeekerProfileHandler(mockSvc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Profile not found", decodeBody(t, rr)["error"])
}
