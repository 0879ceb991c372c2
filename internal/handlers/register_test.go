package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/jwt"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name:         "success",
			body:         `{"email":"sam@example.com","password":"password1","role":"job_seeker"}`,
			expectedCode: http.StatusCreated,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "sam@example.com", "password1", "job_seeker").
					Return(seeker, "JWT_TOKEN", nil)
			},
		},
		{
			name:          "missing role",
			body:          `{"email":"sam@example.com","password":"password1"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name:          "admin role",
			body:          `{"email":"root@example.com","password":"password1","role":"admin"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid role",
		},
		{
			name:          "invalid email",
			body:          `{"email":"not-an-email","password":"password1","role":"employer"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid email address",
		},
		{
			name:          "short password",
			body:          `{"email":"sam@example.com","password":"short","role":"employer"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Password must be at least 8 characters",
		},
		{
			name:          "invalid json",
			body:          `{invalid json}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "user already exists",
			body:         `{"email":"sam@example.com","password":"password1","role":"job_seeker"}`,
			expectedCode: http.StatusConflict,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "sam@example.com", "password1", "job_seeker").
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedError: "User already exists",
		},
		{
			name:         "internal server error",
			body:         `{"email":"sam@example.com","password":"password1","role":"job_seeker"}`,
			expectedCode: http.StatusInternalServerError,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "sam@example.com", "password1", "job_seeker").
					Return(nil, "", errors.New("database failure"))
			},
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc, NewSessionCookie("dev", jwt.DefaultExpiration))
			rr := serve(http.MethodPost, "/auth/register", "/auth/register", []byte(tt.body), nil, handler)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				assert.Empty(t, rr.Result().Cookies())
				return
			}

			assert.Equal(t, "User created successfully", resp["message"])
			user, ok := resp["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "job_seeker", user["role"])
			_, leaked := user["password_hash"]
			assert.False(t, leaked)

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, jwt.CookieName, cookies[0].Name)
			assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
			assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookies[0].MaxAge)
			assert.True(t, cookies[0].HttpOnly)
			assert.False(t, cookies[0].Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
			assert.Equal(t, "/", cookies[0].Path)
		})
	}
}

func TestSessionCookie(t *testing.T) {
	tests := []struct {
		env    string
		secure bool
	}{
		{env: "production", secure: true},
		{env: "preview", secure: true},
		{env: "dev", secure: false},
		{env: "", secure: false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			c := NewSessionCookie(tt.env, 0)
			assert.Equal(t, tt.secure, c.Secure)
			assert.Equal(t, jwt.DefaultExpiration, c.TTL)
		})
	}
}

func TestBindJSON_EmptyBody(t *testing.T) {
	rr := serve(http.MethodPost, "/x", "/x", nil, nil, func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		err := bindJSON(r, &req)
		require.Error(t, err)
		writeError(w, err)
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "Missing required fields"))
}
