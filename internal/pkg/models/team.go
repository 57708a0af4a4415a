package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a fundraising team of volunteers
type Team struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	City         string     `json:"city" db:"city"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty" db:"supervisor_id"`
	TargetAmount int64      `json:"target_amount" db:"target_amount"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// TeamRequest represents a request to create or update a team
type TeamRequest struct {
	Name         string `json:"name" validate:"required"`
	City         string `json:"city,omitempty"`
	TargetAmount int64  `json:"target_amount,omitempty"`
}

// AssignSupervisorRequest represents a request to assign a team supervisor
type AssignSupervisorRequest struct {
	UserID string `json:"user_id" validate:"required"`
}
