package ziswaf

import (
	"context"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ziswafid/ziswaf-manager/services/ziswaf ZiswafGW

// ZiswafGW covers the donation domain's outbound calls.
type ZiswafGW interface {
	PublishDonationRecorded(ctx context.Context, donation *models.Donation) error
}
