package models

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// SelfRegistrable reports whether a user may pick this role at sign-up.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}

// UserDB represents a user record in the database
type UserDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	Email         string    `json:"email" db:"email"`                   // Unique email
	PasswordHash  string    `json:"-" db:"password_hash"`               // Bcrypt hash, never serialized
	Role          Role      `json:"role" db:"role"`                     // Immutable after creation
	IsPaid        bool      `json:"is_paid" db:"is_paid"`               // Payment flag
	EmailVerified bool      `json:"email_verified" db:"email_verified"` // Email verification flag
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// User is the authenticated caller as seen by handlers and services.
type User struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	IsPaid bool   `json:"is_paid"`
}

// ToUser strips credentials from a stored user.
func (u *UserDB) ToUser() *User {
	return &User{
		ID:     u.ID,
		Email:  u.Email,
		Role:   u.Role,
		IsPaid: u.IsPaid,
	}
}
