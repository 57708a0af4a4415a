package usecase

import (
	"context"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// Logout drops the user's session. The call always succeeds from the
// caller's point of view: a backend that cannot be reached only means
// the stored record lingers until it is overwritten by the next login.
func (u *AuthUC) Logout(ctx context.Context, userID string) error {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	if err := u.sessions.Clear(ctx, userID); err != nil {
		logger.Warn("failed to clear session backend, logging out anyway",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	logger.Info("user logged out", logger.String("user_id", userID))
	return nil
}

// GetSession returns the stored session state for the user.
func (u *AuthUC) GetSession(ctx context.Context, userID string) (*models.Session, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	sess, err := u.sessions.Load(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Unauthorized("no active session")
		}
		return nil, apperrors.Transport(err)
	}
	return sess, nil
}

// PushScreen records a screen visit in the session's navigation history
// and returns the updated stack.
func (u *AuthUC) PushScreen(ctx context.Context, userID, screen string) ([]string, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	screens, err := u.sessions.PushScreen(ctx, userID, screen)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return screens, nil
}

// PopScreen steps the navigation history back one screen and returns the
// updated stack. At the root screen the history is left untouched.
func (u *AuthUC) PopScreen(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	screens, err := u.sessions.PopScreen(ctx, userID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return screens, nil
}
