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

// CreateDonation records a collected donation
func (r *ZiswafRepo) CreateDonation(ctx context.Context, donation *models.Donation) error {
	donation.ID = uuid.New()
	donation.CreatedAt = time.Now()

	query := `
		INSERT INTO donations (id, donor_id, user_id, team_id, amount,
			category, payment_method, notes, donated_at, created_at
		) VALUES (:id, :donor_id, :user_id, :team_id, :amount,
			:category, :payment_method, :notes, :donated_at, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, donation); err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

// GetDonationByID retrieves a donation by ID
func (r *ZiswafRepo) GetDonationByID(ctx context.Context, id string) (*models.Donation, error) {
	query := `
		SELECT id, donor_id, user_id, team_id, amount, category,
			payment_method, notes, donated_at, created_at
		FROM donations WHERE id = $1
	`

	var donation models.Donation
	if err := r.db.GetContext(ctx, &donation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("donation not found")
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return &donation, nil
}

func (r *ZiswafRepo) listDonations(ctx context.Context, field, value string) ([]*models.Donation, error) {
	query := fmt.Sprintf(`
		SELECT id, donor_id, user_id, team_id, amount, category,
			payment_method, notes, donated_at, created_at
		FROM donations WHERE %s = $1
		ORDER BY donated_at DESC
	`, field)

	donations := []*models.Donation{}
	if err := r.db.SelectContext(ctx, &donations, query, value); err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// ListDonationsByUser lists the donations a fundraiser collected
func (r *ZiswafRepo) ListDonationsByUser(ctx context.Context, userID string) ([]*models.Donation, error) {
	return r.listDonations(ctx, "user_id", userID)
}

// ListDonationsByDonor lists a donor's giving history
func (r *ZiswafRepo) ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	return r.listDonations(ctx, "donor_id", donorID)
}

// ListDonationsByTeam lists the donations attributed to a team
func (r *ZiswafRepo) ListDonationsByTeam(ctx context.Context, teamID string) ([]*models.Donation, error) {
	return r.listDonations(ctx, "team_id", teamID)
}

func (r *ZiswafRepo) summary(ctx context.Context, field, value string) (*models.DonationSummary, error) {
	query := fmt.Sprintf(`
		SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM donations WHERE %s = $1
		GROUP BY category
		ORDER BY category
	`, field)

	rows := []models.CategoryTotal{}
	if err := r.db.SelectContext(ctx, &rows, query, value); err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}

	summary := &models.DonationSummary{ByCategory: rows}
	for _, row := range rows {
		summary.TotalAmount += row.Total
		summary.Count += row.Count
	}
	return summary, nil
}

// SummaryByUser aggregates a fundraiser's collected donations per category
func (r *ZiswafRepo) SummaryByUser(ctx context.Context, userID string) (*models.DonationSummary, error) {
	return r.summary(ctx, "user_id", userID)
}

// SummaryByTeam aggregates a team's collected donations per category
func (r *ZiswafRepo) SummaryByTeam(ctx context.Context, teamID string) (*models.DonationSummary, error) {
	return r.summary(ctx, "team_id", teamID)
}

// GetTeamProgress reports a team's collected total against its target
func (r *ZiswafRepo) GetTeamProgress(ctx context.Context, teamID string) (*models.TeamProgress, error) {
	query := `
		SELECT t.id AS team_id, t.name, t.target_amount,
			COALESCE((SELECT SUM(d.amount) FROM donations d WHERE d.team_id = t.id), 0) AS collected_amount
		FROM teams t WHERE t.id = $1
	`

	var progress models.TeamProgress
	if err := r.db.GetContext(ctx, &progress, query, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("team not found")
		}
		return nil, fmt.Errorf("failed to get team progress: %w", err)
	}
	return &progress, nil
}
