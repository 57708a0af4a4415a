package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

// Register creates a new user account keyed by phone number. The phone
// number stays unverified until the first successful OTP verification.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.Validation("full name is required")
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, apperrors.Validation("city is required")
	}

	msisdn, err := utils.NormalizeMSISDN(req.MSISDN)
	if err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetUserByMSISDN(ctx, msisdn); err == nil {
		return nil, apperrors.Conflict("phone number is already registered")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, apperrors.Transport(err)
	}

	// Every account starts as a volunteer; only an admin can raise a
	// role through the role-change endpoint.
	user := &models.User{
		MSISDN:   msisdn,
		FullName: fullName,
		City:     city,
		Role:     models.RoleVolunteer,
		IsActive: true,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, apperrors.Transport(err)
	}

	// Registration already succeeded, so a publish failure is only logged.
	if err := u.userGW.PublishUserRegistered(ctx, user); err != nil {
		logger.Warn("failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return user, nil
}

// RefreshUser reloads the user's profile from the database and updates
// the stored session copy. The stale session copy is served when the
// reload fails, so callers keep working through backend hiccups.
func (u *AuthUC) RefreshUser(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	sess, err := u.sessions.Load(ctx, userID)
	if err != nil {
		return nil, apperrors.Unauthorized("no active session")
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Unauthorized("account no longer exists")
		}
		logger.Warn("user refresh failed, serving session copy",
			logger.String("user_id", userID),
			logger.Err(err))
		if sess.User == nil {
			return nil, apperrors.Transport(err)
		}
		return sess.User, nil
	}

	if err := u.sessions.SaveUser(ctx, userID, user); err != nil {
		logger.Warn("failed to update session user copy",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	return user, nil
}

// UpdateUserRole changes another user's role. Only admins may do this.
func (u *AuthUC) UpdateUserRole(ctx context.Context, actorID, targetID, role string) (*models.User, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	if !models.ValidRole(role) {
		return nil, apperrors.Validation("invalid role: " + role)
	}

	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return nil, apperrors.Validation("invalid user id")
	}

	actor, err := u.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	if actor.Role != models.RoleAdmin {
		return nil, apperrors.Unauthorized("only admins can change roles")
	}

	if err := u.userRepo.UpdateUserRole(ctx, targetUUID, role); err != nil {
		return nil, apperrors.Transport(err)
	}

	target, err := u.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	logger.Info("user role updated",
		logger.String("actor_id", actorID),
		logger.String("target_id", targetID),
		logger.String("role", role))
	return target, nil
}
