package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and set the auth-token session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.AuthResponse "Session started"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		cookie.Set(w, token)
		writeJSON(w, http.StatusOK, models.AuthResponse{
			Message: "Login successful",
			User:    user,
		})
	}
}

// NewLogoutHandler clears the session cookie. It never fails.
// @Summary Logout
// @Description Expires the auth-token cookie. Calling it without a session is fine.
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Logged out"
// @Router /auth/logout [post]
func NewLogoutHandler(cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie.Clear(w)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
	}
}

// NewSessionHandler returns the caller resolved from the session cookie.
// @Summary Current session
// @Description Returns the authenticated user with role and payment flag as currently stored
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/session [get]
// @Security CookieAuth
func NewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, models.SessionResponse{User: user})
	}
}
