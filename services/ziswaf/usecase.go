package ziswaf

import (
	"context"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ziswafid/ziswaf-manager/services/ziswaf ZiswafUC

// ZiswafUC is the donation-domain facade: donor book, donation
// recording and aggregation, team management, and donor messaging.
type ZiswafUC interface {
	// donor book
	CreateDonor(ctx context.Context, userID string, req *models.DonorRequest) (*models.Donor, error)
	GetDonor(ctx context.Context, donorID string) (*models.Donor, error)
	UpdateDonor(ctx context.Context, userID, donorID string, req *models.DonorRequest) (*models.Donor, error)
	DeleteDonor(ctx context.Context, userID, donorID string) error
	ListDonors(ctx context.Context, userID string) ([]*models.Donor, error)

	// donation recording
	RecordDonation(ctx context.Context, userID string, req *models.DonationRequest) (*models.Donation, error)
	ListDonationsByUser(ctx context.Context, userID string) ([]*models.Donation, error)
	ListDonationsByDonor(ctx context.Context, donorID string) ([]*models.Donation, error)
	ListDonationsByTeam(ctx context.Context, teamID string) ([]*models.Donation, error)
	UserSummary(ctx context.Context, userID string) (*models.DonationSummary, error)
	TeamSummary(ctx context.Context, teamID string) (*models.DonationSummary, error)
	TeamProgress(ctx context.Context, teamID string) (*models.TeamProgress, error)

	// team management
	CreateTeam(ctx context.Context, actorID string, req *models.TeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, teamID string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	AssignSupervisor(ctx context.Context, actorID, teamID, userID string) (*models.Team, error)
	JoinTeam(ctx context.Context, userID, teamID string) error

	// donor messaging
	CreateTemplate(ctx context.Context, userID string, req *models.TemplateRequest) (*models.MessageTemplate, error)
	GetTemplate(ctx context.Context, templateID string) (*models.MessageTemplate, error)
	UpdateTemplate(ctx context.Context, userID, templateID string, req *models.TemplateRequest) (*models.MessageTemplate, error)
	DeleteTemplate(ctx context.Context, userID, templateID string) error
	ListTemplates(ctx context.Context) ([]*models.MessageTemplate, error)
	RenderTemplate(ctx context.Context, templateID string, req *models.RenderRequest) (*models.RenderedMessage, error)
}
