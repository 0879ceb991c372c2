package models

import "time"

// MaxResumeSize is the upper bound for an uploaded resume.
const MaxResumeSize = 5 << 20

// MaxResumeNameLength bounds resume titles and file names.
const MaxResumeNameLength = 255

// PDFContentType is the only accepted resume content type.
const PDFContentType = "application/pdf"

// ResumeDB represents a resume row.
type ResumeDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	FileURL   string    `json:"file_url" db:"file_url"`
	FileName  string    `json:"file_name" db:"file_name"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ResumeUpload is a validated resume file ready to be stored.
type ResumeUpload struct {
	FileName    string
	Title       string
	ContentType string
	Size        int64
	Content     []byte
}

// ListResumesResponse lists the caller's resumes
// swagger:model ListResumesResponse
type ListResumesResponse struct {
	Resumes []ResumeDB `json:"resumes"`
}

// UploadResumeResponse represents a successful resume upload
// swagger:model UploadResumeResponse
type UploadResumeResponse struct {
	// example: Resume uploaded successfully
	Message string    `json:"message"`
	URL     string    `json:"url"`
	Resume  *ResumeDB `json:"resume"`
}
