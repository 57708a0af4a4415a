package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

func TestRegister_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("user not found"))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().PublishUserRegistered(gomock.Any(), gomock.Any()).Return(nil)

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		FullName: "  Siti Rahma  ",
		MSISDN:   "08123456789",
		City:     "Bandung",
	})
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahma", user.FullName)
	assert.Equal(t, msisdn, user.MSISDN)
	assert.Equal(t, models.RoleVolunteer, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.MSISDNVerified)
}

func TestRegister_DuplicatePhoneNumber(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Siti Rahma",
		MSISDN:   msisdn,
		City:     "Bandung",
	})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestRegister_PublishFailureDoesNotFail(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("user not found"))
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishUserRegistered(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Siti Rahma",
		MSISDN:   msisdn,
		City:     "Bandung",
	})
	assert.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{"empty name", &models.RegisterRequest{MSISDN: "08123456789", City: "Bandung"}},
		{"blank name", &models.RegisterRequest{FullName: "   ", MSISDN: "08123456789", City: "Bandung"}},
		{"empty city", &models.RegisterRequest{FullName: "Siti", MSISDN: "08123456789"}},
		{"blank city", &models.RegisterRequest{FullName: "Siti", MSISDN: "08123456789", City: "   "}},
		{"empty msisdn", &models.RegisterRequest{FullName: "Siti", City: "Bandung"}},
		{"short msisdn", &models.RegisterRequest{FullName: "Siti", MSISDN: "0812", City: "Bandung"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tt.req)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation))
		})
	}
}

func TestRefreshUser_UpdatesSessionCopy(t *testing.T) {
	uc, mockRepo, _, sessions := newTestUC(t)
	user := activeUser("628123456789")
	userID := user.ID.String()

	require.NoError(t, sessions.Save(context.Background(), userID, "token-1", user))

	fresh := *user
	fresh.FullName = "Siti Rahma Putri"
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&fresh, nil)

	got, err := uc.RefreshUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahma Putri", got.FullName)

	sess, err := sessions.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahma Putri", sess.User.FullName)
}

func TestRefreshUser_BackendDownServesSessionCopy(t *testing.T) {
	uc, mockRepo, _, sessions := newTestUC(t)
	user := activeUser("628123456789")
	userID := user.ID.String()

	require.NoError(t, sessions.Save(context.Background(), userID, "token-1", user))

	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, errors.New("db down"))

	got, err := uc.RefreshUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.FullName, got.FullName)
}

func TestRefreshUser_NoSession(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.RefreshUser(context.Background(), uuid.New().String())
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestRefreshUser_DeletedAccount(t *testing.T) {
	uc, mockRepo, _, sessions := newTestUC(t)
	user := activeUser("628123456789")
	userID := user.ID.String()

	require.NoError(t, sessions.Save(context.Background(), userID, "token-1", user))

	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, apperrors.NotFound("user not found"))

	_, err := uc.RefreshUser(context.Background(), userID)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestUpdateUserRole_AdminOnly(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	actor := activeUser("628111111111")
	actor.Role = models.RoleSupervisor
	target := activeUser("628222222222")

	mockRepo.EXPECT().GetUserByID(gomock.Any(), actor.ID.String()).Return(actor, nil)

	_, err := uc.UpdateUserRole(context.Background(), actor.ID.String(), target.ID.String(), models.RoleSupervisor)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestUpdateUserRole_Success(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	actor := activeUser("628111111111")
	actor.Role = models.RoleAdmin
	target := activeUser("628222222222")

	mockRepo.EXPECT().GetUserByID(gomock.Any(), actor.ID.String()).Return(actor, nil)
	mockRepo.EXPECT().UpdateUserRole(gomock.Any(), target.ID, models.RoleSupervisor).Return(nil)
	updated := *target
	updated.Role = models.RoleSupervisor
	mockRepo.EXPECT().GetUserByID(gomock.Any(), target.ID.String()).Return(&updated, nil)

	got, err := uc.UpdateUserRole(context.Background(), actor.ID.String(), target.ID.String(), models.RoleSupervisor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSupervisor, got.Role)
}
