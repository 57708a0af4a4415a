package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// CreateTeam creates a fundraising team. Supervisors and admins only.
func (u *ZiswafUC) CreateTeam(ctx context.Context, actorID string, req *models.TeamRequest) (*models.Team, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	if _, err := u.requireRole(ctx, actorID, models.RoleSupervisor, models.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("team name is required")
	}
	if req.TargetAmount < 0 {
		return nil, apperrors.Validation("target amount cannot be negative")
	}

	team := &models.Team{
		Name:         name,
		City:         strings.TrimSpace(req.City),
		TargetAmount: req.TargetAmount,
	}

	if err := u.repo.CreateTeam(ctx, team); err != nil {
		return nil, apperrors.Transport(err)
	}
	return team, nil
}

// GetTeam retrieves a team.
func (u *ZiswafUC) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	team, err := u.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return team, nil
}

// ListTeams lists every fundraising team.
func (u *ZiswafUC) ListTeams(ctx context.Context) ([]*models.Team, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return teams, nil
}

// AssignSupervisor sets a team's supervising user. The assignee must
// hold the supervisor or admin role.
func (u *ZiswafUC) AssignSupervisor(ctx context.Context, actorID, teamID, userID string) (*models.Team, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	if _, err := u.requireRole(ctx, actorID, models.RoleAdmin); err != nil {
		return nil, err
	}

	teamUUID, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apperrors.Validation("invalid team id")
	}

	assignee, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	if assignee.Role != models.RoleSupervisor && assignee.Role != models.RoleAdmin {
		return nil, apperrors.Validation("assignee must hold the supervisor role")
	}

	if err := u.repo.SetTeamSupervisor(ctx, teamUUID, assignee.ID); err != nil {
		return nil, apperrors.Transport(err)
	}

	logger.Info("team supervisor assigned",
		logger.String("team_id", teamID),
		logger.String("supervisor_id", userID))

	team, err := u.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return team, nil
}

// JoinTeam places the user in a team.
func (u *ZiswafUC) JoinTeam(ctx context.Context, userID, teamID string) error {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation("invalid user id")
	}
	teamUUID, err := uuid.Parse(teamID)
	if err != nil {
		return apperrors.Validation("invalid team id")
	}

	if _, err := u.repo.GetTeamByID(ctx, teamID); err != nil {
		return apperrors.Transport(err)
	}

	if err := u.repo.SetUserTeam(ctx, userUUID, teamUUID); err != nil {
		return apperrors.Transport(err)
	}
	return nil
}
