package models

import "time"

// SeekerProfileDB represents a job seeker profile row.
type SeekerProfileDB struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Education *string   `json:"education,omitempty" db:"education"`
	ResumeURL *string   `json:"resume_url,omitempty" db:"resume_url"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SeekerProfileRequest represents the JSON body for saving a seeker profile
// swagger:model SeekerProfileRequest
type SeekerProfileRequest struct {
	// required: true
	// example: Jane Doe
	Name      string  `json:"name" validate:"required,max=255"`
	Location  *string `json:"location" validate:"omitempty,max=255"`
	Education *string `json:"education"`
}

// SeekerProfileResponse represents a saved profile
// swagger:model SeekerProfileResponse
type SeekerProfileResponse struct {
	Message string           `json:"message,omitempty"`
	Profile *SeekerProfileDB `json:"profile"`
}
