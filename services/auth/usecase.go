package auth

import (
	"context"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ziswafid/ziswaf-manager/services/auth AuthUC

// AuthUC is the authentication facade: registration, the OTP lifecycle,
// session maintenance, and navigation history.
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// OTP lifecycle
	GenerateOTP(ctx context.Context, msisdn, purpose string) error
	VerifyOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error)

	// session maintenance
	Logout(ctx context.Context, userID string) error
	RefreshUser(ctx context.Context, userID string) (*models.User, error)
	GetSession(ctx context.Context, userID string) (*models.Session, error)

	// navigation history
	PushScreen(ctx context.Context, userID, screen string) ([]string, error)
	PopScreen(ctx context.Context, userID string) ([]string, error)

	// admin operations
	UpdateUserRole(ctx context.Context, actorID, targetID, role string) (*models.User, error)
}
