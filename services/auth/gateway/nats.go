package gateway

import (
	"context"
	"time"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// UserRegisteredEvent is published when a new fundraiser account is
// created, so downstream services can provision team membership and
// welcome messages.
type UserRegisteredEvent struct {
	UserID       string    `json:"user_id"`
	MSISDN       string    `json:"msisdn"`
	FullName     string    `json:"full_name"`
	City         string    `json:"city"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

// PublishUserRegistered publishes the registration event to NATS.
func (g *UserGW) PublishUserRegistered(ctx context.Context, user *models.User) error {
	if g.producer == nil {
		return nil
	}

	return g.producer.Publish(constants.SubjectUserRegistered, UserRegisteredEvent{
		UserID:       user.ID.String(),
		MSISDN:       user.MSISDN,
		FullName:     user.FullName,
		City:         user.City,
		Role:         user.Role,
		RegisteredAt: user.CreatedAt,
	})
}
