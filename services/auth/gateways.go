package auth

import (
	"context"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ziswafid/ziswaf-manager/services/auth UserGW

// UserGW covers the auth service's outbound calls: OTP delivery and
// domain event publication.
type UserGW interface {
	NotifyOTP(ctx context.Context, msisdn, code, purpose string) error
	PublishUserRegistered(ctx context.Context, user *models.User) error
}
