package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// bcrypt reads at most 72 bytes
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=8,max=72"`

	// required: true
	// example: job_seeker
	Role string `json:"role" validate:"required,oneof=job_seeker employer"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a session cookie was issued
// swagger:model AuthResponse
type AuthResponse struct {
	// example: User created successfully
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Question asked successfully
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Unauthorized
	Error string `json:"error"`
}

// SessionResponse describes the caller of the current session
// swagger:model SessionResponse
type SessionResponse struct {
	User *User `json:"user"`
}
