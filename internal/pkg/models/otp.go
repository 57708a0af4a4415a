package models

import (
	"time"
)

// OTP statuses
const (
	OTPStatusSent     = "sent"
	OTPStatusVerified = "verified"
	OTPStatusExpired  = "expired"
	OTPStatusFailed   = "failed"
)

// OTP purposes
const (
	OTPPurposeLogin       = "login"
	OTPPurposeVerifyPhone = "verify_phone"
	OTPPurposeReset       = "reset"
)

// ValidOTPPurpose reports whether purpose is one of the known OTP purposes.
func ValidOTPPurpose(purpose string) bool {
	switch purpose {
	case OTPPurposeLogin, OTPPurposeVerifyPhone, OTPPurposeReset:
		return true
	}
	return false
}

// OTP represents the live one-time password record for a phone number.
// At most one record per MSISDN exists at a time; a fresh send replaces it.
type OTP struct {
	ID           string    `json:"id"`
	MSISDN       string    `json:"msisdn"`
	Code         string    `json:"code"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	AttemptCount int       `json:"attempt_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastSentAt   time.Time `json:"last_sent_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// OTPAudit is an append-only trail row written on send and on terminal
// OTP transitions
type OTPAudit struct {
	ID        string    `json:"id" db:"id"`
	MSISDN    string    `json:"msisdn" db:"msisdn"`
	Purpose   string    `json:"purpose" db:"purpose"`
	Status    string    `json:"status" db:"status"`
	Attempts  int       `json:"attempts" db:"attempts"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest represents a request to send an OTP to a phone number
type LoginRequest struct {
	MSISDN  string `json:"msisdn" validate:"required"`
	Purpose string `json:"purpose,omitempty"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}
