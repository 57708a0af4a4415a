package models

import (
	"time"

	"github.com/google/uuid"
)

// Donor represents a donation-giving contact managed by a fundraiser
type Donor struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	MSISDN    *string   `json:"msisdn,omitempty" db:"msisdn"`
	City      string    `json:"city" db:"city"`
	Address   string    `json:"address" db:"address"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DonorRequest represents a request to create or update a donor
type DonorRequest struct {
	FullName string `json:"full_name" validate:"required"`
	MSISDN   string `json:"msisdn,omitempty"`
	City     string `json:"city,omitempty"`
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
