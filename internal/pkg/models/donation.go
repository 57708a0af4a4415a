package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation categories (the ZISWAF pillars)
const (
	CategoryZakat   = "zakat"
	CategoryInfaq   = "infaq"
	CategorySedekah = "sedekah"
	CategoryWakaf   = "wakaf"
)

// Payment methods
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
	PaymentQRIS     = "qris"
)

// ValidCategory reports whether category is one of the ZISWAF pillars.
func ValidCategory(category string) bool {
	switch category {
	case CategoryZakat, CategoryInfaq, CategorySedekah, CategoryWakaf:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether method is a known payment method.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentTransfer, PaymentQRIS:
		return true
	}
	return false
}

// Donation represents a single collected donation. Amount is in whole rupiah.
type Donation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	DonorID       uuid.UUID  `json:"donor_id" db:"donor_id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" db:"team_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Category      string     `json:"category" db:"category"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Notes         string     `json:"notes" db:"notes"`
	DonatedAt     time.Time  `json:"donated_at" db:"donated_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// DonationRequest represents a request to record a donation
type DonationRequest struct {
	DonorID       string `json:"donor_id" validate:"required"`
	Amount        int64  `json:"amount" validate:"required"`
	Category      string `json:"category" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Notes         string `json:"notes,omitempty"`
	DonatedAt     string `json:"donated_at,omitempty"` // RFC3339, defaults to now
}

// CategoryTotal is one per-category aggregation row
type CategoryTotal struct {
	Category string `json:"category" db:"category"`
	Total    int64  `json:"total" db:"total"`
	Count    int64  `json:"count" db:"count"`
}

// DonationSummary aggregates collected donations for a volunteer or team
type DonationSummary struct {
	TotalAmount int64           `json:"total_amount"`
	Count       int64           `json:"count"`
	ByCategory  []CategoryTotal `json:"by_category"`
}

// TeamProgress reports a team's collected total against its target
type TeamProgress struct {
	TeamID          uuid.UUID `json:"team_id" db:"team_id"`
	Name            string    `json:"name" db:"name"`
	TargetAmount    int64     `json:"target_amount" db:"target_amount"`
	CollectedAmount int64     `json:"collected_amount" db:"collected_amount"`
}
