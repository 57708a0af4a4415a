package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// RecordDonation validates and stores a collected donation, attributing
// it to the collecting fundraiser and their team.
func (u *ZiswafUC) RecordDonation(ctx context.Context, userID string, req *models.DonationRequest) (*models.Donation, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	if req.Amount <= 0 {
		return nil, apperrors.Validation("amount must be positive")
	}
	if !models.ValidCategory(req.Category) {
		return nil, apperrors.Validation("unknown donation category: " + req.Category)
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperrors.Validation("unknown payment method: " + req.PaymentMethod)
	}

	donorID, err := uuid.Parse(req.DonorID)
	if err != nil {
		return nil, apperrors.Validation("invalid donor id")
	}

	donatedAt := time.Now()
	if req.DonatedAt != "" {
		donatedAt, err = time.Parse(time.RFC3339, req.DonatedAt)
		if err != nil {
			return nil, apperrors.Validation("donated_at must be RFC3339")
		}
	}

	if _, err := u.repo.GetDonorByID(ctx, req.DonorID); err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("donor not found")
		}
		return nil, apperrors.Transport(err)
	}

	collector, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	donation := &models.Donation{
		DonorID:       donorID,
		UserID:        collector.ID,
		TeamID:        collector.TeamID,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		DonatedAt:     donatedAt,
	}

	if err := u.repo.CreateDonation(ctx, donation); err != nil {
		return nil, apperrors.Transport(err)
	}

	// The donation is already stored; a publish failure is only logged.
	if err := u.gw.PublishDonationRecorded(ctx, donation); err != nil {
		logger.Warn("failed to publish donation recorded event",
			logger.String("donation_id", donation.ID.String()),
			logger.Err(err))
	}

	return donation, nil
}

// ListDonationsByUser lists the donations a fundraiser collected.
func (u *ZiswafUC) ListDonationsByUser(ctx context.Context, userID string) ([]*models.Donation, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	donations, err := u.repo.ListDonationsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return donations, nil
}

// ListDonationsByDonor lists a donor's giving history.
func (u *ZiswafUC) ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	donations, err := u.repo.ListDonationsByDonor(ctx, donorID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return donations, nil
}

// ListDonationsByTeam lists the donations attributed to a team.
func (u *ZiswafUC) ListDonationsByTeam(ctx context.Context, teamID string) ([]*models.Donation, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	donations, err := u.repo.ListDonationsByTeam(ctx, teamID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return donations, nil
}

// UserSummary aggregates a fundraiser's collected donations.
func (u *ZiswafUC) UserSummary(ctx context.Context, userID string) (*models.DonationSummary, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	summary, err := u.repo.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return summary, nil
}

// TeamSummary aggregates a team's collected donations.
func (u *ZiswafUC) TeamSummary(ctx context.Context, teamID string) (*models.DonationSummary, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	summary, err := u.repo.SummaryByTeam(ctx, teamID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return summary, nil
}

// TeamProgress reports a team's collected total against its target.
func (u *ZiswafUC) TeamProgress(ctx context.Context, teamID string) (*models.TeamProgress, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	progress, err := u.repo.GetTeamProgress(ctx, teamID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return progress, nil
}
