package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyHandler(t *testing.T) {
	resumeID := int64(12)

	tests := []struct {
		name          string
		target        string
		body          string
		user          *models.User
		mockSetup     func(m *MockApplier)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success",
			target: "/jobs/7/apply",
			body:   `{"resumeId":12}`,
			user:   seeker,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), seeker, int64(7), &resumeID).
					Return(&models.ApplicationDB{ID: 55, JobID: 7, SeekerID: 3, ResumeID: 12, Status: models.StatusApplied}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "no resume selected",
			target: "/jobs/7/apply",
			body:   `{}`,
			user:   seeker,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), seeker, int64(7), nil).Return(nil, services.ErrSelectResume)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Please select a resume to apply",
		},
		{
			name:   "already applied",
			target: "/jobs/7/apply",
			body:   `{"resumeId":12}`,
			user:   seeker,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), seeker, int64(7), &resumeID).Return(nil, services.ErrAlreadyApplied)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "You have already applied for this job",
		},
		{
			name:   "employer forbidden",
			target: "/jobs/7/apply",
			body:   `{"resumeId":12}`,
			user:   employer,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), employer, int64(7), &resumeID).Return(nil, services.ErrJobSeekerOnly)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Only job seekers can perform this action",
		},
		{
			name:   "job not found",
			target: "/jobs/404/apply",
			body:   `{"resumeId":12}`,
			user:   seeker,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), seeker, int64(404), &resumeID).Return(nil, services.ErrJobNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Job not found",
		},
		{
			name:   "store failure",
			target: "/jobs/7/apply",
			body:   `{"resumeId":12}`,
			user:   seeker,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), seeker, int64(7), &resumeID).Return(nil, errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "bad job id",
			target:        "/jobs/abc/apply",
			body:          `{"resumeId":12}`,
			user:          seeker,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid id",
		},
		{
			name:          "invalid json",
			target:        "/jobs/7/apply",
			body:          `{"resumeId":"twelve"}`,
			user:          seeker,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockApplier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPost, "/jobs/{id}/apply", tt.target, []byte(tt.body), tt.user, NewApplyHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, map[string]any{"error": tt.expectedError}, resp)
				return
			}
			assert.Equal(t, "Application submitted successfully", resp["message"])
			app := resp["application"].(map[string]any)
			assert.Equal(t, "applied", app["status"])
			assert.Equal(t, float64(12), app["resume_id"])
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockStatusUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "accepted",
			body: `{"status":"accepted"}`,
			mockSetup: func(m *MockStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), employer, int64(55), "accepted").
					Return(&models.ApplicationDB{ID: 55, Status: models.StatusAccepted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid status",
			body: `{"status":"hired"}`,
			mockSetup: func(m *MockStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), employer, int64(55), "hired").Return(nil, services.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Status must be accepted or rejected",
		},
		{
			name:          "missing status",
			body:          `{}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name: "not owned",
			body: `{"status":"rejected"}`,
			mockSetup: func(m *MockStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), employer, int64(55), "rejected").Return(nil, services.ErrApplicationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Application not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockStatusUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPatch, "/employer/applications/{id}/status", "/employer/applications/55/status",
				[]byte(tt.body), employer, NewUpdateStatusHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}
			assert.Equal(t, "Application status updated", resp["message"])
		})
	}
}

func TestListEmployerApplicationsHandler(t *testing.T) {
	name := "Sam"
	tests := []struct {
		name         string
		user         *models.User
		mockSetup    func(m *MockEmployerApplicationLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "listed",
			user: employer,
			mockSetup: func(m *MockEmployerApplicationLister) {
				m.EXPECT().ListForEmployer(gomock.Any(), employer).Return([]models.EmployerApplication{
					{ID: 7, JobID: 10, SeekerID: 3, Status: models.StatusApplied, JobTitle: "Go Developer", ApplicantEmail: "sam@example.com", ApplicantName: &name},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "none yet",
			user: employer,
			mockSetup: func(m *MockEmployerApplicationLister) {
				m.EXPECT().ListForEmployer(gomock.Any(), employer).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "seeker",
			user: seeker,
			mockSetup: func(m *MockEmployerApplicationLister) {
				m.EXPECT().ListForEmployer(gomock.Any(), seeker).Return(nil, services.ErrEmployerOnly)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockEmployerApplicationLister(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(http.MethodGet, "/employer/applications", "/employer/applications", nil, tt.user,
				NewListEmployerApplicationsHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			list, ok := decodeBody(t, rr)["applications"].([]any)
			require.True(t, ok)
			require.Len(t, list, tt.expectedLen)
			if tt.expectedLen > 0 {
				app := list[0].(map[string]any)
				assert.Equal(t, float64(7), app["id"])
				assert.Equal(t, "Go Developer", app["job_title"])
				assert.Equal(t, "Sam", app["applicant_name"])
				assert.Equal(t, "sam@example.com", app["applicant_email"])
				assert.Equal(t, "applied", app["status"])
			}
		})
	}
}
