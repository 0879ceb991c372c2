package models

import (
	"fmt"
	"time"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "applied"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseReviewStatus accepts only the statuses an employer may set.
func ParseReviewStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case StatusAccepted, StatusRejected:
		return st, nil
	case StatusApplied:
		return "", fmt.Errorf("status %q cannot be set by review", s)
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// ApplicationDB represents an application row.
type ApplicationDB struct {
	ID              int64             `json:"id" db:"id"`
	JobID           int64             `json:"job_id" db:"job_id"`
	SeekerID        int64             `json:"seeker_id" db:"seeker_id"`
	ResumeID        int64             `json:"resume_id" db:"resume_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ApplicationDate time.Time         `json:"application_date" db:"application_date"`
}

// OwnedApplication is an application joined with the job it belongs to.
type OwnedApplication struct {
	ID         int64             `db:"id"`
	JobID      int64             `db:"job_id"`
	SeekerID   int64             `db:"seeker_id"`
	Status     ApplicationStatus `db:"status"`
	JobTitle   string            `db:"job_title"`
	EmployerID int64             `db:"employer_id"`
}

// EmployerApplication is an application as listed to the employer of its job.
// Applicant fields are nil when the seeker has no profile.
type EmployerApplication struct {
	ID                int64             `json:"id" db:"id"`
	JobID             int64             `json:"job_id" db:"job_id"`
	SeekerID          int64             `json:"seeker_id" db:"seeker_id"`
	ResumeID          int64             `json:"resume_id" db:"resume_id"`
	Status            ApplicationStatus `json:"status" db:"status"`
	ApplicationDate   time.Time         `json:"application_date" db:"application_date"`
	JobTitle          string            `json:"job_title" db:"job_title"`
	JobLocation       *string           `json:"job_location,omitempty" db:"job_location"`
	IsRemote          bool              `json:"is_remote" db:"is_remote"`
	ApplicantEmail    string            `json:"applicant_email" db:"applicant_email"`
	ApplicantName     *string           `json:"applicant_name,omitempty" db:"applicant_name"`
	ApplicantLocation *string           `json:"applicant_location,omitempty" db:"applicant_location"`
	Education         *string           `json:"education,omitempty" db:"education"`
	ResumeURL         string            `json:"resume_url" db:"resume_url"`
}

// ListEmployerApplicationsResponse lists the applications to the caller's jobs
// swagger:model ListEmployerApplicationsResponse
type ListEmployerApplicationsResponse struct {
	Applications []EmployerApplication `json:"applications"`
}

// ApplyRequest represents the JSON body for applying to a job
// swagger:model ApplyRequest
type ApplyRequest struct {
	// Resume to attach
	// required: true
	// example: 12
	ResumeID *int64 `json:"resumeId"`
}

// ApplyResponse represents a successful application
// swagger:model ApplyResponse
type ApplyResponse struct {
	// example: Application submitted successfully
	Message     string         `json:"message"`
	Application *ApplicationDB `json:"application"`
}

// UpdateStatusRequest represents the JSON body for reviewing an application
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	// required: true
	// example: accepted
	Status string `json:"status" validate:"required"`
}

// UpdateStatusResponse is returned after an application was reviewed
// swagger:model UpdateStatusResponse
type UpdateStatusResponse struct {
	// example: Application status updated
	Message     string         `json:"message"`
	Application *ApplicationDB `json:"application"`
}
