package models

import (
	"time"

	"github.com/google/uuid"
)

// Message template categories
const (
	TemplateReminder  = "reminder"
	TemplateReceipt   = "receipt"
	TemplateBroadcast = "broadcast"
)

// ValidTemplateCategory reports whether category is a known template category.
func ValidTemplateCategory(category string) bool {
	switch category {
	case TemplateReminder, TemplateReceipt, TemplateBroadcast:
		return true
	}
	return false
}

// MessageTemplate represents a reusable donor message with
// {{placeholder}} slots
type MessageTemplate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Category  string    `json:"category" db:"category"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TemplateRequest represents a request to create or update a message template
type TemplateRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// RenderRequest represents a request to render a template for a donor
type RenderRequest struct {
	DonorID    string `json:"donor_id" validate:"required"`
	DonationID string `json:"donation_id,omitempty"`
}

// RenderedMessage is the result of filling a template's placeholders
type RenderedMessage struct {
	TemplateID uuid.UUID `json:"template_id"`
	Body       string    `json:"body"`
}
