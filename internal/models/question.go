package models

import "time"

// EmployerQuestionDB represents a question an employer asked an applicant.
type EmployerQuestionDB struct {
	ID            int64     `json:"id" db:"id"`
	ApplicationID int64     `json:"application_id" db:"application_id"`
	EmployerID    int64     `json:"employer_id" db:"employer_id"`
	QuestionText  string    `json:"question_text" db:"question_text"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AskQuestionRequest represents the JSON body for asking an applicant a question
// swagger:model AskQuestionRequest
type AskQuestionRequest struct {
	// required: true
	// example: Are you available to start in March?
	QuestionText string `json:"questionText"`
}

// AskQuestionResponse is returned after a question was stored
// swagger:model AskQuestionResponse
type AskQuestionResponse struct {
	// example: Question sent successfully
	Message  string              `json:"message"`
	Question *EmployerQuestionDB `json:"question"`
}
