package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/jwt"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

const otpCodeLength = 6

// GenerateOTP issues a fresh code for the phone number and hands it to
// the notification gateway. A resend inside the cooldown window is
// rejected; a resend outside it replaces the previous record, so any
// code still in flight stops being valid.
func (u *AuthUC) GenerateOTP(ctx context.Context, msisdn, purpose string) error {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	msisdn, err := utils.NormalizeMSISDN(msisdn)
	if err != nil {
		return err
	}

	if purpose == "" {
		purpose = models.OTPPurposeLogin
	}
	if !models.ValidOTPPurpose(purpose) {
		return apperrors.Validation("invalid otp purpose: " + purpose)
	}

	if _, err := u.userRepo.GetUserByMSISDN(ctx, msisdn); err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return apperrors.NotFound("phone number is not registered")
		}
		return apperrors.Transport(err)
	}

	now := time.Now()
	if prev, err := u.userRepo.GetOTP(ctx, msisdn); err == nil {
		wait := u.otpCooldown() - now.Sub(prev.LastSentAt)
		if wait > 0 {
			return apperrors.RateLimited(wait)
		}
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return apperrors.Transport(err)
	}

	code, err := utils.GenerateOTPCode(otpCodeLength)
	if err != nil {
		return apperrors.Transport(err)
	}

	otp := &models.OTP{
		ID:           uuid.New().String(),
		MSISDN:       msisdn,
		Code:         code,
		Purpose:      purpose,
		Status:       models.OTPStatusSent,
		AttemptCount: 0,
		CreatedAt:    now,
		LastSentAt:   now,
		ExpiresAt:    now.Add(u.otpExpiry()),
	}

	if err := u.userRepo.UpsertOTP(ctx, otp); err != nil {
		return apperrors.Transport(err)
	}

	u.auditOTP(ctx, otp)

	if err := u.userGW.NotifyOTP(ctx, msisdn, code, purpose); err != nil {
		// Delivery failed, so the record must not stay live.
		if delErr := u.userRepo.DeleteOTP(ctx, msisdn); delErr != nil {
			logger.Error("failed to roll back undelivered otp",
				logger.String("msisdn", utils.MaskPhoneNumber(msisdn)),
				logger.Err(delErr))
		}
		return apperrors.Transport(err)
	}

	logger.Info("otp sent",
		logger.String("msisdn", utils.MaskPhoneNumber(msisdn)),
		logger.String("purpose", purpose))
	return nil
}

// VerifyOTP checks the submitted code against the live record. On a
// match it marks the phone verified, mints a token, and opens a session.
// A wrong code burns one attempt; the fifth wrong attempt kills the
// record, forcing a fresh send.
func (u *AuthUC) VerifyOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	msisdn, err := utils.NormalizeMSISDN(msisdn)
	if err != nil {
		return nil, err
	}
	if !utils.IsNumericCode(code, otpCodeLength) {
		return nil, apperrors.Validation("otp code must be 6 digits")
	}

	user, err := u.userRepo.GetUserByMSISDN(ctx, msisdn)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("phone number is not registered")
		}
		return nil, apperrors.Transport(err)
	}

	otp, err := u.userRepo.GetOTP(ctx, msisdn)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.InvalidCode("no active code, request a new one")
		}
		return nil, apperrors.Transport(err)
	}

	// A record that already reached a terminal status cannot be consumed
	// again, whatever code is submitted.
	if otp.Status != models.OTPStatusSent {
		return nil, apperrors.InvalidCode("code is no longer valid, request a new one")
	}

	if time.Now().After(otp.ExpiresAt) {
		otp.Status = models.OTPStatusExpired
		if err := u.userRepo.UpdateOTP(ctx, otp, otp.ID); err != nil && !apperrors.Is(err, apperrors.KindInvalidCode) {
			logger.Warn("failed to mark otp expired", logger.Err(err))
		}
		u.auditOTP(ctx, otp)
		return nil, apperrors.InvalidCode("code has expired, request a new one")
	}

	if code != otp.Code {
		otp.AttemptCount++
		if otp.AttemptCount >= u.otpMaxAttempts() {
			otp.Status = models.OTPStatusFailed
		}
		if err := u.userRepo.UpdateOTP(ctx, otp, otp.ID); err != nil && !apperrors.Is(err, apperrors.KindInvalidCode) {
			return nil, apperrors.Transport(err)
		}
		if otp.Status == models.OTPStatusFailed {
			u.auditOTP(ctx, otp)
			return nil, apperrors.InvalidCode("too many wrong attempts, request a new code")
		}
		return nil, apperrors.InvalidCode("incorrect code")
	}

	otp.Status = models.OTPStatusVerified
	if err := u.userRepo.UpdateOTP(ctx, otp, otp.ID); err != nil {
		// A concurrent resend replaced the record between read and write,
		// so the code the caller used is no longer the live one.
		if apperrors.Is(err, apperrors.KindInvalidCode) {
			return nil, apperrors.InvalidCode("code was superseded, use the newest one")
		}
		return nil, apperrors.Transport(err)
	}
	u.auditOTP(ctx, otp)

	if !user.MSISDNVerified {
		if err := u.userRepo.MarkMSISDNVerified(ctx, user.ID); err != nil {
			logger.Warn("failed to mark msisdn verified",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		} else {
			user.MSISDNVerified = true
		}
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.MSISDN, u.cfg)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	if err := u.sessions.Save(ctx, user.ID.String(), token, user); err != nil {
		return nil, apperrors.Transport(err)
	}

	logger.Info("otp verified",
		logger.String("user_id", user.ID.String()),
		logger.String("purpose", otp.Purpose))

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// auditOTP appends a trail row. The live flow never fails on a missing
// audit row.
func (u *AuthUC) auditOTP(ctx context.Context, otp *models.OTP) {
	entry := &models.OTPAudit{
		MSISDN:   otp.MSISDN,
		Purpose:  otp.Purpose,
		Status:   otp.Status,
		Attempts: otp.AttemptCount,
	}
	if err := u.userRepo.InsertOTPAudit(ctx, entry); err != nil {
		logger.Warn("failed to write otp audit entry",
			logger.String("msisdn", utils.MaskPhoneNumber(otp.MSISDN)),
			logger.Err(err))
	}
}
