package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobManager(ctrl)
	salary := "100k"

	mockSvc.EXPECT().Create(gomock.Any(), employer, models.NewJob{
		Title:       "Go Developer",
		Description: "Build services",
		Salary:      &salary,
		IsRemote:    true,
	}).Return(&models.JobDB{ID: 10, EmployerID: 1, Title: "Go Developer", IsOpen: true}, nil)

	rr := serve(http.MethodPost, "/employer/jobs", "/employer/jobs",
		[]byte(`{"title":"Go Developer","description":"Build services","salary":"100k","is_remote":true}`),
		employer, NewCreateJobHandler(mockSvc))

	assert.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, "Job created successfully", resp["message"])
	assert.Equal(t, true, resp["job"].(map[string]any)["is_open"])

	// validation happens before the service is called
	rr = serve(http.MethodPost, "/employer/jobs", "/employer/jobs", []byte(`{"title":"Go Developer"}`),
		employer, NewCreateJobHandler(mockSvc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rr)["error"])

	mockSvc.EXPECT().Create(gomock.Any(), seeker, gomock.Any()).Return(nil, services.ErrEmployerOnly)
	rr = serve(http.MethodPost, "/employer/jobs", "/employer/jobs", []byte(`{"title":"t","description":"d"}`),
		seeker, NewCreateJobHandler(mockSvc))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCloseJobHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockJobManager)
		expectedCode int
	}{
		{
			name:   "closed",
			target: "/employer/jobs/10/close",
			mockSetup: func(m *MockJobManager) {
				m.EXPECT().Close(gomock.Any(), employer, int64(10)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "not owned",
			target: "/employer/jobs/11/close",
			mockSetup: func(m *MockJobManager) {
				m.EXPECT().Close(gomock.Any(), employer, int64(11)).Return(services.ErrJobNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			target:       "/employer/jobs/-1/close",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockJobManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPost, "/employer/jobs/{id}/close", tt.target, nil, employer, NewCloseJobHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
