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

// CreateTeam creates a new fundraising team
func (r *ZiswafRepo) CreateTeam(ctx context.Context, team *models.Team) error {
	team.ID = uuid.New()
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	query := `
		INSERT INTO teams (id, name, city, supervisor_id, target_amount,
			created_at, updated_at
		) VALUES (:id, :name, :city, :supervisor_id, :target_amount,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, team); err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

// GetTeamByID retrieves a team by ID
func (r *ZiswafRepo) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	query := `
		SELECT id, name, city, supervisor_id, target_amount, created_at, updated_at
		FROM teams WHERE id = $1
	`

	var team models.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("team not found")
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

// ListTeams lists every fundraising team
func (r *ZiswafRepo) ListTeams(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, city, supervisor_id, target_amount, created_at, updated_at
		FROM teams ORDER BY name
	`

	teams := []*models.Team{}
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// SetTeamSupervisor assigns the supervising user for a team
func (r *ZiswafRepo) SetTeamSupervisor(ctx context.Context, teamID, userID uuid.UUID) error {
	query := `
		UPDATE teams
		SET supervisor_id = $2, updated_at = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, teamID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set team supervisor: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("team not found")
	}
	return nil
}

// SetUserTeam places a user in a team
func (r *ZiswafRepo) SetUserTeam(ctx context.Context, userID, teamID uuid.UUID) error {
	query := `
		UPDATE users
		SET team_id = $2, updated_at = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, teamID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set user team: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}
