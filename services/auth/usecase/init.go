package usecase

import (
	"context"
	"time"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/session"
	"github.com/ziswafid/ziswaf-manager/services/auth"
)

// AuthUC implements the authentication facade
type AuthUC struct {
	userRepo auth.UserRepo
	userGW   auth.UserGW
	sessions *session.Manager
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	userGW auth.UserGW,
	sessions *session.Manager,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		userGW:   userGW,
		sessions: sessions,
		cfg:      cfg,
	}
}

// opCtx bounds every outbound call so a stuck backend surfaces as a
// timeout instead of hanging the caller.
func (u *AuthUC) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(u.cfg.Auth.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (u *AuthUC) otpExpiry() time.Duration {
	minutes := u.cfg.OTP.ExpiryMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

func (u *AuthUC) otpCooldown() time.Duration {
	seconds := u.cfg.OTP.CooldownSeconds
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func (u *AuthUC) otpMaxAttempts() int {
	if u.cfg.OTP.MaxAttempts <= 0 {
		return 5
	}
	return u.cfg.OTP.MaxAttempts
}
