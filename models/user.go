package models

import (
	"time"
)

// Role determines which parts of the dashboard a user can reach
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an account in the DeStegAi user directory.
// The identity provider owns the account itself; this row is the
// directory entry the scan and audit subsystems read from.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	AvatarRef string    `json:"avatar_ref,omitempty" db:"avatar_ref"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileForm represents form data for profile updates
type ProfileForm struct {
	Name string `json:"name"`
}

// Validate validates the profile form data
func (f *ProfileForm) Validate() []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}
