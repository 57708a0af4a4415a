package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ziswafid/ziswaf-manager/services/auth UserRepo

// UserRepo persists users (Postgres), live OTP records (Redis), and the
// append-only OTP audit trail (Postgres).
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error)
	MarkMSISDNVerified(ctx context.Context, id uuid.UUID) error
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error

	// OTP records. UpdateOTP performs a compare-and-swap against the
	// record id so a concurrent resend invalidates in-flight verifies.
	UpsertOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, msisdn string) (*models.OTP, error)
	UpdateOTP(ctx context.Context, otp *models.OTP, expectedID string) error
	DeleteOTP(ctx context.Context, msisdn string) error

	InsertOTPAudit(ctx context.Context, entry *models.OTPAudit) error
}
