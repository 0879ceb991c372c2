package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, role string) (*models.User, string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a job seeker or employer account and starts a session. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.AuthResponse "User successfully registered, auth-token cookie set"
// @Failure 400 {object} models.ErrorResponse "Missing fields, invalid email or role"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Password, req.Role)
		if err != nil {
			writeError(w, err)
			return
		}

		cookie.Set(w, token)
		writeJSON(w, http.StatusCreated, models.AuthResponse{
			Message: "User created successfully",
			User:    user,
		})
	}
}
