package models

import "time"

// JobDB represents a job posting row.
type JobDB struct {
	ID                 int64     `json:"id" db:"id"`
	EmployerID         int64     `json:"employer_id" db:"employer_id"`
	Title              string    `json:"title" db:"title"`
	Description        string    `json:"description" db:"description"`
	ExperienceRequired *string   `json:"experience_required,omitempty" db:"experience_required"`
	Salary             *string   `json:"salary,omitempty" db:"salary"`
	Location           *string   `json:"location,omitempty" db:"location"`
	Country            *string   `json:"country,omitempty" db:"country"`
	IsRemote           bool      `json:"is_remote" db:"is_remote"`
	JobType            *string   `json:"job_type,omitempty" db:"job_type"`
	Domain             *string   `json:"domain,omitempty" db:"domain"`
	IsOpen             bool      `json:"is_open" db:"is_open"`
	PostedAt           time.Time `json:"posted_at" db:"posted_at"`
}

// NewJob carries the employer supplied fields of a posting.
type NewJob struct {
	EmployerID         int64
	Title              string
	Description        string
	ExperienceRequired *string
	Salary             *string
	Location           *string
	Country            *string
	IsRemote           bool
	JobType            *string
	Domain             *string
}

// CreateJobRequest represents the JSON body for posting a job
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	// required: true
	// example: Backend Engineer
	Title string `json:"title" validate:"required,max=255"`
	// required: true
	// example: Build and run our APIs
	Description        string  `json:"description" validate:"required"`
	ExperienceRequired *string `json:"experience_required" validate:"omitempty,max=100"`
	Salary             *string `json:"salary" validate:"omitempty,max=100"`
	Location           *string `json:"location" validate:"omitempty,max=255"`
	Country            *string `json:"country" validate:"omitempty,max=100"`
	IsRemote           bool    `json:"is_remote"`
	JobType            *string `json:"job_type" validate:"omitempty,max=50"`
	Domain             *string `json:"domain" validate:"omitempty,max=100"`
}

// CreateJobResponse represents a successful job posting
// swagger:model CreateJobResponse
type CreateJobResponse struct {
	Message string `json:"message"`
	Job     *JobDB `json:"job"`
}
