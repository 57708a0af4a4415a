package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleVolunteer  = "volunteer"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// User represents a registered fundraiser account
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	MSISDN         string     `json:"msisdn" db:"msisdn"`
	FullName       string     `json:"full_name" db:"full_name"`
	City           string     `json:"city" db:"city"`
	Role           string     `json:"role" db:"role"`
	TeamID         *uuid.UUID `json:"team_id,omitempty" db:"team_id"`
	MSISDNVerified bool       `json:"msisdn_verified" db:"msisdn_verified"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleVolunteer, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// RegisterRequest represents a request to register a new fundraiser
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	MSISDN   string `json:"msisdn" validate:"required"`
	City     string `json:"city" validate:"required"`
}

// UpdateRoleRequest represents an admin request to change a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	User      *User  `json:"user"`
	ExpiresAt int64  `json:"expires_at"`
}
