package gateway

import (
	"context"
	"time"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	natspkg "github.com/ziswafid/ziswaf-manager/internal/pkg/nats"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

// NotificationChannel delivers an OTP code to a phone number. The
// concrete channel is picked at startup from configuration.
type NotificationChannel interface {
	SendOTP(ctx context.Context, msisdn, code, purpose string) error
}

// OTPNotification is the payload handed to the SMS dispatcher.
type OTPNotification struct {
	MSISDN   string    `json:"msisdn"`
	Code     string    `json:"code"`
	Purpose  string    `json:"purpose"`
	IssuedAt time.Time `json:"issued_at"`
}

// NATSChannel hands OTP delivery to the SMS dispatcher via NATS.
type NATSChannel struct {
	producer *natspkg.Producer
}

// NewNATSChannel creates a NATS-backed notification channel.
func NewNATSChannel(client *natspkg.Client) *NATSChannel {
	return &NATSChannel{producer: natspkg.NewProducer(client)}
}

// SendOTP publishes the code on the notify subject.
func (c *NATSChannel) SendOTP(ctx context.Context, msisdn, code, purpose string) error {
	return c.producer.Publish(constants.SubjectNotifyOTP, OTPNotification{
		MSISDN:   msisdn,
		Code:     code,
		Purpose:  purpose,
		IssuedAt: time.Now(),
	})
}

// LoopbackChannel logs the code instead of sending it. Used in local
// development where no SMS dispatcher is running.
type LoopbackChannel struct{}

// NewLoopbackChannel creates a log-only notification channel.
func NewLoopbackChannel() *LoopbackChannel {
	return &LoopbackChannel{}
}

// SendOTP logs the code. The full number never reaches the logs.
func (c *LoopbackChannel) SendOTP(ctx context.Context, msisdn, code, purpose string) error {
	logger.Info("loopback otp delivery",
		logger.String("msisdn", utils.MaskPhoneNumber(msisdn)),
		logger.String("code", code),
		logger.String("purpose", purpose))
	return nil
}

// NotifyOTP delivers the code through the configured channel.
func (g *UserGW) NotifyOTP(ctx context.Context, msisdn, code, purpose string) error {
	return g.notifier.SendOTP(ctx, msisdn, code, purpose)
}
