package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestLengthLimitsAreValidationErrors(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name        string
		method      string
		path        string
		body        map[string]any
		handler     func(ctrl *gomock.Controller) http.HandlerFunc
		wantMessage string
	}{
		{
			name:        "job title",
			method:      http.MethodPost,
			path:        "/employer/jobs",
			body:        map[string]any{"title": long(300), "description": "d"},
			handler:     func(ctrl *gomock.Controller) http.HandlerFunc { return NewCreateJobHandler(NewMockJobManager(ctrl)) },
			wantMessage: "Title must be at most 255 characters",
		},
		{
			name:        "job salary",
			method:      http.MethodPost,
			path:        "/employer/jobs",
			body:        map[string]any{"title": "t", "description": "d", "salary": long(101)},
			handler:     func(ctrl *gomock.Controller) http.HandlerFunc { return NewCreateJobHandler(NewMockJobManager(ctrl)) },
			wantMessage: "Salary must be at most 100 characters",
		},
		{
			name:        "job type",
			method:      http.MethodPost,
			path:        "/employer/jobs",
			body:        map[string]any{"title": "t", "description": "d", "job_type": long(51)},
			handler:     func(ctrl *gomock.Controller) http.HandlerFunc { return NewCreateJobHandler(NewMockJobManager(ctrl)) },
			wantMessage: "Job type must be at most 50 characters",
		},
		{
			name:        "job country",
			method:      http.MethodPost,
			path:        "/employer/jobs",
			body:        map[string]any{"title": "t", "description": "d", "country": long(101)},
			handler:     func(ctrl *gomock.Controller) http.HandlerFunc { return NewCreateJobHandler(NewMockJobManager(ctrl)) },
			wantMessage: "Country must be at most 100 characters",
		},
		{
			name:   "profile name",
			method: http.MethodPut,
			path:   "/seeker/profile",
			body:   map[string]any{"name": long(256)},
			handler: func(ctrl *gomock.Controller) http.HandlerFunc {
				return NewSaveSeekerProfileHandler(NewMockSeekerProfileSaver(ctrl))
			},
			wantMessage: "Name must be at most 255 characters",
		},
		{
			name:   "profile location",
			method: http.MethodPut,
			path:   "/seeker/profile",
			body:   map[string]any{"name": "Sam", "location": long(256)},
			handler: func(ctrl *gomock.Controller) http.HandlerFunc {
				return NewSaveSeekerProfileHandler(NewMockSeekerProfileSaver(ctrl))
			},
			wantMessage: "Location must be at most 255 characters",
		},
		{
			name:   "register password",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   map[string]any{"email": "sam@example.com", "password": long(73), "role": "job_seeker"},
			handler: func(ctrl *gomock.Controller) http.HandlerFunc {
				return NewRegisterHandler(NewMockRegisterer(ctrl), NewSessionCookie("dev", jwt.DefaultExpiration))
			},
			wantMessage: "Password must be at most 72 characters",
		},
		{
			name:   "register email",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   map[string]any{"email": "sam@" + strings.Repeat("abcdefghij.", 25) + "com", "password": "password1", "role": "job_seeker"},
			handler: func(ctrl *gomock.Controller) http.HandlerFunc {
				return NewRegisterHandler(NewMockRegisterer(ctrl), NewSessionCookie("dev", jwt.DefaultExpiration))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectations: the service must not be reached
			rr := serve(tt.method, tt.path, tt.path, mustJSON(t, tt.body), employer, tt.handler(ctrl))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody(t, rr)["error"])
			}
		})
	}
}
