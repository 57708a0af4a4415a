package gateway

import (
	natspkg "github.com/ziswafid/ziswaf-manager/internal/pkg/nats"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf"
)

// ZiswafGW handles the donation domain's outbound calls
type ZiswafGW struct {
	producer *natspkg.Producer
}

// NewZiswafGW creates a gateway instance. natsClient may be nil when
// event publication is not wired, in which case events are dropped.
func NewZiswafGW(natsClient *natspkg.Client) ziswaf.ZiswafGW {
	gw := &ZiswafGW{}
	if natsClient != nil {
		gw.producer = natspkg.NewProducer(natsClient)
	}
	return gw
}
