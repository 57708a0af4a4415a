package gateway

import (
	natspkg "github.com/ziswafid/ziswaf-manager/internal/pkg/nats"
	"github.com/ziswafid/ziswaf-manager/services/auth"
)

// UserGW handles the auth service's outbound calls: OTP delivery through
// the configured notification channel and domain events over NATS.
type UserGW struct {
	notifier NotificationChannel
	producer *natspkg.Producer
}

// NewUserGW creates a gateway instance. natsClient may be nil when event
// publication is not wired, in which case domain events are dropped.
func NewUserGW(notifier NotificationChannel, natsClient *natspkg.Client) auth.UserGW {
	gw := &UserGW{notifier: notifier}
	if natsClient != nil {
		gw.producer = natspkg.NewProducer(natsClient)
	}
	return gw
}
