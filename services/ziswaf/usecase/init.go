package usecase

import (
	"context"
	"time"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// ZiswafUC implements the donation-domain facade
type ZiswafUC struct {
	repo ziswaf.ZiswafRepo
	gw   ziswaf.ZiswafGW
	cfg  *models.Config
}

// NewZiswafUC creates a new donation-domain usecase instance
func NewZiswafUC(repo ziswaf.ZiswafRepo, gw ziswaf.ZiswafGW, cfg *models.Config) *ZiswafUC {
	return &ZiswafUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}

func (u *ZiswafUC) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(u.cfg.Auth.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// requireRole loads the actor and checks it holds one of the given roles.
func (u *ZiswafUC) requireRole(ctx context.Context, userID string, roles ...string) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}
	return nil, apperrors.Unauthorized("insufficient role for this operation")
}
