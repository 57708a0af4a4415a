package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// GetUserByID retrieves a user for role and team checks
func (r *ZiswafRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, msisdn, full_name, city, role, team_id,
			msisdn_verified, is_active, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateDonor creates a new donor contact
func (r *ZiswafRepo) CreateDonor(ctx context.Context, donor *models.Donor) error {
	donor.ID = uuid.New()
	now := time.Now()
	donor.CreatedAt = now
	donor.UpdatedAt = now

	query := `
		INSERT INTO donors (id, full_name, msisdn, city, address, notes,
			created_by, created_at, updated_at
		) VALUES (:id, :full_name, :msisdn, :city, :address, :notes,
			:created_by, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, donor); err != nil {
		return fmt.Errorf("failed to insert donor: %w", err)
	}
	return nil
}

// GetDonorByID retrieves a donor by ID
func (r *ZiswafRepo) GetDonorByID(ctx context.Context, id string) (*models.Donor, error) {
	query := `
		SELECT id, full_name, msisdn, city, address, notes,
			created_by, created_at, updated_at
		FROM donors WHERE id = $1
	`

	var donor models.Donor
	if err := r.db.GetContext(ctx, &donor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("donor not found")
		}
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return &donor, nil
}

// UpdateDonor overwrites a donor's mutable fields
func (r *ZiswafRepo) UpdateDonor(ctx context.Context, donor *models.Donor) error {
	donor.UpdatedAt = time.Now()

	query := `
		UPDATE donors
		SET full_name = :full_name, msisdn = :msisdn, city = :city,
			address = :address, notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, donor)
	if err != nil {
		return fmt.Errorf("failed to update donor: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("donor not found")
	}
	return nil
}

// DeleteDonor removes a donor contact
func (r *ZiswafRepo) DeleteDonor(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete donor: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("donor not found")
	}
	return nil
}

// ListDonorsByCreator lists the donors a fundraiser manages, newest first
func (r *ZiswafRepo) ListDonorsByCreator(ctx context.Context, userID string) ([]*models.Donor, error) {
	query := `
		SELECT id, full_name, msisdn, city, address, notes,
			created_by, created_at, updated_at
		FROM donors WHERE created_by = $1
		ORDER BY created_at DESC
	`

	donors := []*models.Donor{}
	if err := r.db.SelectContext(ctx, &donors, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	return donors, nil
}
