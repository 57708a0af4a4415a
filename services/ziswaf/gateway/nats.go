package gateway

import (
	"context"
	"time"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// DonationRecordedEvent is published for every stored donation, feeding
// receipt generation and reporting.
type DonationRecordedEvent struct {
	DonationID    string    `json:"donation_id"`
	DonorID       string    `json:"donor_id"`
	UserID        string    `json:"user_id"`
	TeamID        string    `json:"team_id,omitempty"`
	Amount        int64     `json:"amount"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"payment_method"`
	DonatedAt     time.Time `json:"donated_at"`
}

// PublishDonationRecorded publishes the donation event to NATS.
func (g *ZiswafGW) PublishDonationRecorded(ctx context.Context, donation *models.Donation) error {
	if g.producer == nil {
		return nil
	}

	event := DonationRecordedEvent{
		DonationID:    donation.ID.String(),
		DonorID:       donation.DonorID.String(),
		UserID:        donation.UserID.String(),
		Amount:        donation.Amount,
		Category:      donation.Category,
		PaymentMethod: donation.PaymentMethod,
		DonatedAt:     donation.DonatedAt,
	}
	if donation.TeamID != nil {
		event.TeamID = donation.TeamID.String()
	}

	return g.producer.Publish(constants.SubjectDonationRecorded, event)
}
