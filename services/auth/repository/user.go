package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

const uniqueViolation = "23505"

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, msisdn, full_name, city, role,
			team_id, msisdn_verified, is_active, created_at, updated_at
		) VALUES (:id, :msisdn, :full_name, :city, :role,
			:team_id, :msisdn_verified, :is_active, :created_at, :updated_at)
	`
	_, err = tx.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.Conflict("phone number is already registered")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByMSISDN retrieves a user by phone number
func (r *UserRepo) GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error) {
	return r.getUserByField(ctx, "msisdn", msisdn)
}

func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, msisdn, full_name, city, role, team_id,
			msisdn_verified, is_active, created_at, updated_at
		FROM users WHERE %s = $1
	`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// MarkMSISDNVerified flags a user's phone number as verified
func (r *UserRepo) MarkMSISDNVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET msisdn_verified = true, updated_at = $2
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark msisdn verified: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("user not found")
	}

	return nil
}

// UpdateUserRole changes a user's role
func (r *UserRepo) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	query := `
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, role, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("user not found")
	}

	return nil
}
