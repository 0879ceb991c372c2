package models

// Event types published to the event stream.
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
	EventQuestionAsked            = "question.asked"
)

// Event is a domain event published after a workflow commits.
type Event struct {
	EventID       string `json:"event_id"`       // Unique identifier of the event.
	Type          string `json:"type"`           // One of the Event* constants.
	Timestamp     int64  `json:"timestamp"`      // Unix seconds when the event was produced.
	UserID        int64  `json:"user_id"`        // Caller that triggered the event.
	ApplicationID int64  `json:"application_id"` // Application the event refers to.
	JobID         int64  `json:"job_id,omitempty"`
	Status        string `json:"status,omitempty"`
}
