package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/jwt"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"erin@example.com","password":"pass1234"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "erin@example.com", "pass1234").Return(employer, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"erin@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "erin@example.com", "wrong").Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name: "internal error",
			body: `{"email":"erin@example.com","password":"pass1234"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "erin@example.com", "pass1234").Return(nil, "", errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          `{`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc, NewSessionCookie("production", 0))
			rr := serve(http.MethodPost, "/auth/login", "/auth/login", []byte(tt.body), nil, handler)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			assert.Equal(t, "Login successful", resp["message"])
			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
			assert.True(t, cookies[0].Secure)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler := NewLogoutHandler(NewSessionCookie("dev", 0))

	// twice in a row, the second time without a session
	for i, user := range []*models.User{employer, nil} {
		rr := serve(http.MethodPost, "/auth/logout", "/auth/logout", nil, user, handler)

		assert.Equal(t, http.StatusOK, rr.Code, "call %d", i)
		header := rr.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(header, jwt.CookieName+"=;"), header)
		assert.Contains(t, header, "Max-Age=0")
		assert.Contains(t, header, "HttpOnly")
		assert.Contains(t, header, "SameSite=Lax")
		assert.Equal(t, "Logged out successfully", decodeBody(t, rr)["message"])
	}
}

func TestSessionHandler(t *testing.T) {
	rr := serve(http.MethodGet, "/auth/session", "/auth/session", nil, seeker, NewSessionHandler())
	assert.Equal(t, http.StatusOK, rr.Code)
	user := decodeBody(t, rr)["user"].(map[string]any)
	assert.Equal(t, "sam@example.com", user["email"])
	assert.Equal(t, "job_seeker", user["role"])

	rr = serve(http.MethodGet, "/auth/session", "/auth/session", nil, nil, NewSessionHandler())
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
