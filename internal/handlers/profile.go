package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// SeekerProfileSaver saves the caller's seeker profile.
type SeekerProfileSaver interface {
	SaveSeekerProfile(ctx context.Context, user *models.User, req models.SeekerProfileRequest) (*models.SeekerProfileDB, error)
}

// SeekerProfileGetter loads the caller's seeker profile.
type SeekerProfileGetter interface {
	GetSeekerProfile(ctx context.Context, user *models.User) (*models.SeekerProfileDB, error)
}

// NewSaveSeekerProfileHandler returns an HTTP handler that creates or replaces the caller's profile.
// @Summary Save seeker profile
// @Description A profile is required before applying to jobs
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.SeekerProfileRequest true "Profile"
// @Success 200 {object} models.SeekerProfileResponse
// @Failure 400 {object} models.ErrorResponse "Name is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only job seekers have a seeker profile"
// @Router /seeker/profile [put]
// @Security CookieAuth
func NewSaveSeekerProfileHandler(svc SeekerProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SeekerProfileRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		profile, err := svc.SaveSeekerProfile(r.Context(), middlewares.UserFromContext(r.Context()), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.SeekerProfileResponse{
			Message: "Profile saved",
			Profile: profile,
		})
	}
}

// NewGetSeekerProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get seeker profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.SeekerProfileResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only job seekers have a seeker profile"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Router /seeker/profile [get]
// @Security CookieAuth
func NewGetSeekerProfileHandler(svc SeekerProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.GetSeekerProfile(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.SeekerProfileResponse{Profile: profile})
	}
}
