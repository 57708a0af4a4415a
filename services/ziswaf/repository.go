package ziswaf

import (
	"context"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ziswafid/ziswaf-manager/services/ziswaf ZiswafRepo

// ZiswafRepo persists the donation domain: donors, donations and their
// aggregates, teams, and message templates. Users are read for role and
// team checks only.
type ZiswafRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreateDonor(ctx context.Context, donor *models.Donor) error
	GetDonorByID(ctx context.Context, id string) (*models.Donor, error)
	UpdateDonor(ctx context.Context, donor *models.Donor) error
	DeleteDonor(ctx context.Context, id string) error
	ListDonorsByCreator(ctx context.Context, userID string) ([]*models.Donor, error)

	CreateDonation(ctx context.Context, donation *models.Donation) error
	GetDonationByID(ctx context.Context, id string) (*models.Donation, error)
	ListDonationsByUser(ctx context.Context, userID string) ([]*models.Donation, error)
	ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error)
	ListDonationsByTeam(ctx context.Context, teamID string) ([]*models.Donation, error)
	SummaryByUser(ctx context.Context, userID string) (*models.DonationSummary, error)
	SummaryByTeam(ctx context.Context, teamID string) (*models.DonationSummary, error)
	GetTeamProgress(ctx context.Context, teamID string) (*models.TeamProgress, error)

	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	SetTeamSupervisor(ctx context.Context, teamID, userID uuid.UUID) error
	SetUserTeam(ctx context.Context, userID, teamID uuid.UUID) error

	CreateTemplate(ctx context.Context, tmpl *models.MessageTemplate) error
	GetTemplateByID(ctx context.Context, id string) (*models.MessageTemplate, error)
	UpdateTemplate(ctx context.Context, tmpl *models.MessageTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]*models.MessageTemplate, error)
}
