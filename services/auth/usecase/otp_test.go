package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/session"
	"github.com/ziswafid/ziswaf-manager/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 10080,
			Issuer:     "ziswaf-manager-test",
		},
		OTP: models.OTPConfig{
			ExpiryMinutes:   5,
			CooldownSeconds: 60,
			MaxAttempts:     5,
		},
		Auth: models.AuthConfig{RequestTimeout: 10},
	}
}

func newTestUC(t *testing.T) (*AuthUC, *mocks.MockUserRepo, *mocks.MockUserGW, *session.Manager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	sessions := session.NewManager(session.NewMemoryStore())

	uc := NewAuthUC(mockRepo, mockGW, sessions, testConfig())
	return uc, mockRepo, mockGW, sessions
}

func activeUser(msisdn string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		MSISDN:   msisdn,
		FullName: "Siti Rahma",
		Role:     models.RoleVolunteer,
		IsActive: true,
	}
}

func sentOTP(msisdn, code string) *models.OTP {
	now := time.Now()
	return &models.OTP{
		ID:         uuid.New().String(),
		MSISDN:     msisdn,
		Code:       code,
		Purpose:    models.OTPPurposeLogin,
		Status:     models.OTPStatusSent,
		CreatedAt:  now.Add(-2 * time.Minute),
		LastSentAt: now.Add(-2 * time.Minute),
		ExpiresAt:  now.Add(3 * time.Minute),
	}
}

func TestGenerateOTP_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("otp not found"))

	var sentCode string
	mockRepo.EXPECT().
		UpsertOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, msisdn, otp.MSISDN)
			assert.Equal(t, models.OTPStatusSent, otp.Status)
			assert.Len(t, otp.Code, 6)
			assert.Zero(t, otp.AttemptCount)
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), otp.ExpiresAt, 2*time.Second)
			sentCode = otp.Code
			return nil
		})
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		NotifyOTP(gomock.Any(), msisdn, gomock.Any(), models.OTPPurposeLogin).
		DoAndReturn(func(ctx context.Context, m, code, purpose string) error {
			assert.Equal(t, sentCode, code)
			return nil
		})

	err := uc.GenerateOTP(context.Background(), "08123456789", "")
	assert.NoError(t, err)
}

func TestGenerateOTP_UnregisteredNumber(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("user not found"))

	err := uc.GenerateOTP(context.Background(), msisdn, models.OTPPurposeLogin)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestGenerateOTP_CooldownRejectsResend(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"

	prev := sentOTP(msisdn, "111111")
	prev.LastSentAt = time.Now().Add(-20 * time.Second)

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(prev, nil)

	err := uc.GenerateOTP(context.Background(), msisdn, models.OTPPurposeLogin)
	require.True(t, apperrors.Is(err, apperrors.KindRateLimited))

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Greater(t, appErr.RetryAfter, 30*time.Second)
	assert.LessOrEqual(t, appErr.RetryAfter, 40*time.Second)
}

func TestGenerateOTP_ResendAfterCooldownReplacesRecord(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	msisdn := "628123456789"

	prev := sentOTP(msisdn, "111111")
	prev.LastSentAt = time.Now().Add(-90 * time.Second)

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(prev, nil)
	mockRepo.EXPECT().
		UpsertOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.NotEqual(t, prev.ID, otp.ID)
			return nil
		})
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyOTP(gomock.Any(), msisdn, gomock.Any(), models.OTPPurposeLogin).Return(nil)

	err := uc.GenerateOTP(context.Background(), msisdn, models.OTPPurposeLogin)
	assert.NoError(t, err)
}

func TestGenerateOTP_DeliveryFailureRollsBack(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("otp not found"))
	mockRepo.EXPECT().UpsertOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyOTP(gomock.Any(), msisdn, gomock.Any(), models.OTPPurposeLogin).Return(errors.New("broker down"))
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), msisdn).Return(nil)

	err := uc.GenerateOTP(context.Background(), msisdn, models.OTPPurposeLogin)
	assert.True(t, apperrors.Is(err, apperrors.KindNetwork))
}

func TestGenerateOTP_InvalidPurpose(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	err := uc.GenerateOTP(context.Background(), "628123456789", "takeover")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestVerifyOTP_Success(t *testing.T) {
	uc, mockRepo, _, sessions := newTestUC(t)
	msisdn := "628123456789"
	user := activeUser(msisdn)
	otp := sentOTP(msisdn, "482913")

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(user, nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any(), otp.ID).
		DoAndReturn(func(ctx context.Context, o *models.OTP, expectedID string) error {
			assert.Equal(t, models.OTPStatusVerified, o.Status)
			return nil
		})
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkMSISDNVerified(gomock.Any(), user.ID).Return(nil)

	resp, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.MSISDNVerified)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

	// A session must exist and carry the fresh token.
	sess, err := sessions.Load(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, resp.Token, sess.AccessToken)
	assert.Equal(t, user.ID, sess.User.ID)
	assert.Empty(t, sess.Screens)
}

func TestVerifyOTP_WrongCodeBurnsAttempt(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any(), otp.ID).
		DoAndReturn(func(ctx context.Context, o *models.OTP, expectedID string) error {
			assert.Equal(t, 1, o.AttemptCount)
			assert.Equal(t, models.OTPStatusSent, o.Status)
			return nil
		})

	_, err := uc.VerifyOTP(context.Background(), msisdn, "000000")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_FifthWrongAttemptKillsRecord(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")
	otp.AttemptCount = 4

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any(), otp.ID).
		DoAndReturn(func(ctx context.Context, o *models.OTP, expectedID string) error {
			assert.Equal(t, 5, o.AttemptCount)
			assert.Equal(t, models.OTPStatusFailed, o.Status)
			return nil
		})
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.VerifyOTP(context.Background(), msisdn, "000000")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_FailedRecordRejectsCorrectCode(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")
	otp.Status = models.OTPStatusFailed
	otp.AttemptCount = 5

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_AlreadyConsumed(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")
	otp.Status = models.OTPStatusVerified

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")
	otp.ExpiresAt = time.Now().Add(-time.Minute)

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any(), otp.ID).
		DoAndReturn(func(ctx context.Context, o *models.OTP, expectedID string) error {
			assert.Equal(t, models.OTPStatusExpired, o.Status)
			return nil
		})
	mockRepo.EXPECT().InsertOTPAudit(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_SupersededByConcurrentResend(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"
	otp := sentOTP(msisdn, "482913")

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(otp, nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any(), otp.ID).
		Return(apperrors.InvalidCode("otp record was replaced"))

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_NoActiveCode(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(activeUser(msisdn), nil)
	mockRepo.EXPECT().GetOTP(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("otp not found"))

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCode))
}

func TestVerifyOTP_MalformedCode(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	for _, code := range []string{"", "12345", "1234567", "12a456", "12 456"} {
		_, err := uc.VerifyOTP(context.Background(), "628123456789", code)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation), "code %q", code)
	}
}

func TestVerifyOTP_UnregisteredNumber(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	msisdn := "628123456789"

	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), msisdn).Return(nil, apperrors.NotFound("user not found"))

	_, err := uc.VerifyOTP(context.Background(), msisdn, "482913")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
