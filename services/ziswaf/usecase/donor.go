package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

func donorFromRequest(req *models.DonorRequest) (*models.Donor, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.Validation("donor name is required")
	}

	donor := &models.Donor{
		FullName: fullName,
		City:     strings.TrimSpace(req.City),
		Address:  strings.TrimSpace(req.Address),
		Notes:    strings.TrimSpace(req.Notes),
	}

	// Phone is optional for donors, but a provided one must be valid.
	if req.MSISDN != "" {
		msisdn, err := utils.NormalizeMSISDN(req.MSISDN)
		if err != nil {
			return nil, err
		}
		donor.MSISDN = &msisdn
	}

	return donor, nil
}

// CreateDonor adds a donor contact to the fundraiser's book.
func (u *ZiswafUC) CreateDonor(ctx context.Context, userID string, req *models.DonorRequest) (*models.Donor, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	creatorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("invalid user id")
	}

	donor, err := donorFromRequest(req)
	if err != nil {
		return nil, err
	}
	donor.CreatedBy = creatorID

	if err := u.repo.CreateDonor(ctx, donor); err != nil {
		return nil, apperrors.Transport(err)
	}
	return donor, nil
}

// GetDonor retrieves a donor contact.
func (u *ZiswafUC) GetDonor(ctx context.Context, donorID string) (*models.Donor, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	donor, err := u.repo.GetDonorByID(ctx, donorID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return donor, nil
}

// UpdateDonor overwrites a donor contact. Only the fundraiser who created
// the contact may change it.
func (u *ZiswafUC) UpdateDonor(ctx context.Context, userID, donorID string, req *models.DonorRequest) (*models.Donor, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	existing, err := u.repo.GetDonorByID(ctx, donorID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	if existing.CreatedBy.String() != userID {
		return nil, apperrors.Unauthorized("donor belongs to another fundraiser")
	}

	donor, err := donorFromRequest(req)
	if err != nil {
		return nil, err
	}
	donor.ID = existing.ID
	donor.CreatedBy = existing.CreatedBy
	donor.CreatedAt = existing.CreatedAt

	if err := u.repo.UpdateDonor(ctx, donor); err != nil {
		return nil, apperrors.Transport(err)
	}
	return donor, nil
}

// DeleteDonor removes a donor contact. Only the creating fundraiser may
// delete it.
func (u *ZiswafUC) DeleteDonor(ctx context.Context, userID, donorID string) error {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	existing, err := u.repo.GetDonorByID(ctx, donorID)
	if err != nil {
		return apperrors.Transport(err)
	}
	if existing.CreatedBy.String() != userID {
		return apperrors.Unauthorized("donor belongs to another fundraiser")
	}

	if err := u.repo.DeleteDonor(ctx, donorID); err != nil {
		return apperrors.Transport(err)
	}
	return nil
}

// ListDonors lists the fundraiser's donor book.
func (u *ZiswafUC) ListDonors(ctx context.Context, userID string) ([]*models.Donor, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	donors, err := u.repo.ListDonorsByCreator(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return donors, nil
}
