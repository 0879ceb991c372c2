package services

import (
	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/models"
)

// Errors returned to callers. Messages are shown to clients as is.
var (
	ErrUnauthenticated = apperrors.Unauthenticated("Unauthorized")
	ErrJobSeekerOnly   = apperrors.Forbidden("Only job seekers can perform this action")
	ErrEmployerOnly    = apperrors.Forbidden("Only employers can perform this action")

	// auth
	ErrMissingFields      = apperrors.Validation("Missing required fields")
	ErrInvalidRole        = apperrors.Validation("Invalid role")
	ErrUserAlreadyExists  = apperrors.Conflict("User already exists")
	ErrInvalidCredentials = apperrors.Unauthenticated("Invalid email or password")
	ErrPasswordTooLong    = apperrors.Validation("Password must be at most 72 bytes")

	// apply
	ErrSelectResume      = apperrors.Validation("Please select a resume to apply")
	ErrJobNotFound       = apperrors.NotFound("Job not found")
	ErrJobClosed         = apperrors.Validation("Job is no longer accepting applications")
	ErrAlreadyApplied    = apperrors.Conflict("You have already applied for this job")
	ErrProfileIncomplete = apperrors.Validation("Please complete your profile before applying")
	ErrResumeNotFound    = apperrors.Validation("Selected resume not found or unauthorized")

	// employer review and messaging
	ErrApplicationNotFound = apperrors.NotFound("Application not found")
	ErrQuestionRequired    = apperrors.Validation("Question text is required")
	ErrInvalidStatus       = apperrors.Validation("Status must be accepted or rejected")

	// jobs
	ErrJobFieldsRequired = apperrors.Validation("Title and description are required")

	// resumes
	ErrResumeRequired  = apperrors.Validation("No file uploaded")
	ErrResumeNotPDF    = apperrors.Validation("Only PDF files are allowed")
	ErrResumeTooLarge  = apperrors.Validation("File size must be less than 5MB")
	ErrResumeTitleLong = apperrors.Validation("Title must be at most 255 characters")
	ErrFileNameLong    = apperrors.Validation("File name must be at most 255 characters")

	// profiles
	ErrNameRequired    = apperrors.Validation("Name is required")
	ErrProfileNotFound = apperrors.NotFound("Profile not found")
)

// requireRole is the service side of the route guard.
func requireRole(user *models.User, role models.Role, denied error) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if user.Role != role {
		return denied
	}
	return nil
}
