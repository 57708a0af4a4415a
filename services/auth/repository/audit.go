package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// InsertOTPAudit appends an OTP trail row. The trail is write-only from
// the application's point of view; it exists for operational review.
func (r *UserRepo) InsertOTPAudit(ctx context.Context, entry *models.OTPAudit) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO otp_audit (id, msisdn, purpose, status, attempts, created_at)
		VALUES (:id, :msisdn, :purpose, :status, :attempts, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to insert OTP audit entry: %w", err)
	}

	return nil
}
