package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// CreateTemplate creates a new message template
func (r *ZiswafRepo) CreateTemplate(ctx context.Context, tmpl *models.MessageTemplate) error {
	tmpl.ID = uuid.New()
	now := time.Now()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	query := `
		INSERT INTO message_templates (id, title, body, category,
			created_by, created_at, updated_at
		) VALUES (:id, :title, :body, :category,
			:created_by, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tmpl); err != nil {
		return fmt.Errorf("failed to insert template: %w", err)
	}
	return nil
}

// GetTemplateByID retrieves a message template by ID
func (r *ZiswafRepo) GetTemplateByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	query := `
		SELECT id, title, body, category, created_by, created_at, updated_at
		FROM message_templates WHERE id = $1
	`

	var tmpl models.MessageTemplate
	if err := r.db.GetContext(ctx, &tmpl, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("template not found")
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &tmpl, nil
}

// UpdateTemplate overwrites a template's mutable fields
func (r *ZiswafRepo) UpdateTemplate(ctx context.Context, tmpl *models.MessageTemplate) error {
	tmpl.UpdatedAt = time.Now()

	query := `
		UPDATE message_templates
		SET title = :title, body = :body, category = :category, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, tmpl)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("template not found")
	}
	return nil
}

// DeleteTemplate removes a message template
func (r *ZiswafRepo) DeleteTemplate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM message_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.NotFound("template not found")
	}
	return nil
}

// ListTemplates lists every message template, newest first
func (r *ZiswafRepo) ListTemplates(ctx context.Context) ([]*models.MessageTemplate, error) {
	query := `
		SELECT id, title, body, category, created_by, created_at, updated_at
		FROM message_templates ORDER BY created_at DESC
	`

	templates := []*models.MessageTemplate{}
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}
