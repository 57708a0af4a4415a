package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	natspkg "github.com/ziswafid/ziswaf-manager/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestPublishUserRegistered(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "failed to connect to NATS server")
	defer nc.Close()

	user := &models.User{
		ID:        uuid.New(),
		MSISDN:    "628123456789",
		FullName:  "Siti Rahma",
		City:      "Bandung",
		Role:      models.RoleVolunteer,
		CreatedAt: time.Now(),
	}

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectUserRegistered, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewUserGW(NewLoopbackChannel(), nc)
	require.NoError(t, gw.PublishUserRegistered(context.Background(), user))

	select {
	case msg := <-msgCh:
		var event UserRegisteredEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, user.ID.String(), event.UserID)
		assert.Equal(t, user.MSISDN, event.MSISDN)
		assert.Equal(t, models.RoleVolunteer, event.Role)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for registration event")
	}
}

func TestPublishUserRegistered_NoClient(t *testing.T) {
	gw := NewUserGW(NewLoopbackChannel(), nil)

	err := gw.PublishUserRegistered(context.Background(), &models.User{ID: uuid.New()})
	assert.NoError(t, err)
}

func TestNATSChannelSendOTP(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "failed to connect to NATS server")
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectNotifyOTP, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewUserGW(NewNATSChannel(nc), nc)
	require.NoError(t, gw.NotifyOTP(context.Background(), "628123456789", "482913", models.OTPPurposeLogin))

	select {
	case msg := <-msgCh:
		var payload OTPNotification
		require.NoError(t, json.Unmarshal(msg.Data, &payload))
		assert.Equal(t, "628123456789", payload.MSISDN)
		assert.Equal(t, "482913", payload.Code)
		assert.Equal(t, models.OTPPurposeLogin, payload.Purpose)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for otp notification")
	}
}

func TestLoopbackChannelSendOTP(t *testing.T) {
	gw := NewUserGW(NewLoopbackChannel(), nil)

	err := gw.NotifyOTP(context.Background(), "628123456789", "482913", models.OTPPurposeLogin)
	assert.NoError(t, err)
}
