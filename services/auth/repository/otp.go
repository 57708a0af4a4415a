package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

func otpKey(msisdn string) string {
	return fmt.Sprintf(constants.KeyUserOTP, msisdn)
}

// UpsertOTP stores the live OTP record for a phone number, replacing any
// earlier record. The key TTL matches the code's expiry so stale records
// vanish on their own.
func (r *UserRepo) UpsertOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("OTP expiry is not in the future")
	}

	if err := r.redisClient.Set(ctx, otpKey(otp.MSISDN), data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	return nil
}

// GetOTP retrieves the live OTP record for a phone number
func (r *UserRepo) GetOTP(ctx context.Context, msisdn string) (*models.OTP, error) {
	val, err := r.redisClient.Get(ctx, otpKey(msisdn))
	if err == redis.Nil {
		return nil, apperrors.NotFound("no active OTP for this phone number")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to decode OTP record: %w", err)
	}

	return &otp, nil
}

// UpdateOTP rewrites the OTP record only if the stored record still has
// the expected id. A concurrent resend replaces the record id, so the
// compare-and-swap makes in-flight verifies of the old code lose instead
// of silently overwriting the fresh one.
func (r *UserRepo) UpdateOTP(ctx context.Context, otp *models.OTP, expectedID string) error {
	key := otpKey(otp.MSISDN)

	err := r.redisClient.Client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return apperrors.InvalidCode("code is invalid or expired")
		}
		if err != nil {
			return err
		}

		var current models.OTP
		if err := json.Unmarshal([]byte(val), &current); err != nil {
			return fmt.Errorf("failed to decode OTP record: %w", err)
		}
		if current.ID != expectedID {
			return apperrors.InvalidCode("code is invalid or expired")
		}

		data, err := json.Marshal(otp)
		if err != nil {
			return fmt.Errorf("failed to marshal OTP: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, redis.KeepTTL)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return apperrors.InvalidCode("code is invalid or expired")
	}
	if err != nil {
		if apperrors.Is(err, apperrors.KindInvalidCode) {
			return err
		}
		return fmt.Errorf("failed to update OTP: %w", err)
	}

	return nil
}

// DeleteOTP removes the live OTP record for a phone number
func (r *UserRepo) DeleteOTP(ctx context.Context, msisdn string) error {
	if err := r.redisClient.Delete(ctx, otpKey(msisdn)); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
