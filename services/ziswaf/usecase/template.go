package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

func templateFromRequest(req *models.TemplateRequest) (*models.MessageTemplate, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.Validation("template title is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.Validation("template body is required")
	}
	if !models.ValidTemplateCategory(req.Category) {
		return nil, apperrors.Validation("unknown template category: " + req.Category)
	}

	return &models.MessageTemplate{
		Title:    title,
		Body:     req.Body,
		Category: req.Category,
	}, nil
}

// CreateTemplate creates a reusable donor message.
func (u *ZiswafUC) CreateTemplate(ctx context.Context, userID string, req *models.TemplateRequest) (*models.MessageTemplate, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	creatorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("invalid user id")
	}

	tmpl, err := templateFromRequest(req)
	if err != nil {
		return nil, err
	}
	tmpl.CreatedBy = creatorID

	if err := u.repo.CreateTemplate(ctx, tmpl); err != nil {
		return nil, apperrors.Transport(err)
	}
	return tmpl, nil
}

// GetTemplate retrieves a message template.
func (u *ZiswafUC) GetTemplate(ctx context.Context, templateID string) (*models.MessageTemplate, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	tmpl, err := u.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return tmpl, nil
}

// UpdateTemplate overwrites a message template. Only the creator may
// change it.
func (u *ZiswafUC) UpdateTemplate(ctx context.Context, userID, templateID string, req *models.TemplateRequest) (*models.MessageTemplate, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	existing, err := u.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	if existing.CreatedBy.String() != userID {
		return nil, apperrors.Unauthorized("template belongs to another fundraiser")
	}

	tmpl, err := templateFromRequest(req)
	if err != nil {
		return nil, err
	}
	tmpl.ID = existing.ID
	tmpl.CreatedBy = existing.CreatedBy
	tmpl.CreatedAt = existing.CreatedAt

	if err := u.repo.UpdateTemplate(ctx, tmpl); err != nil {
		return nil, apperrors.Transport(err)
	}
	return tmpl, nil
}

// DeleteTemplate removes a message template. Only the creator may delete it.
func (u *ZiswafUC) DeleteTemplate(ctx context.Context, userID, templateID string) error {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	existing, err := u.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return apperrors.Transport(err)
	}
	if existing.CreatedBy.String() != userID {
		return apperrors.Unauthorized("template belongs to another fundraiser")
	}

	if err := u.repo.DeleteTemplate(ctx, templateID); err != nil {
		return apperrors.Transport(err)
	}
	return nil
}

// ListTemplates lists every message template.
func (u *ZiswafUC) ListTemplates(ctx context.Context) ([]*models.MessageTemplate, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	templates, err := u.repo.ListTemplates(ctx)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	return templates, nil
}

// RenderTemplate fills a template's placeholders from the donor and,
// when given, a donation. Placeholders with no value stay as written so
// the sender can spot them before sending.
func (u *ZiswafUC) RenderTemplate(ctx context.Context, templateID string, req *models.RenderRequest) (*models.RenderedMessage, error) {
	ctx, cancel := u.opCtx(ctx)
	defer cancel()

	tmpl, err := u.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	donor, err := u.repo.GetDonorByID(ctx, req.DonorID)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	values := map[string]string{
		"name": donor.FullName,
	}

	if req.DonationID != "" {
		donation, err := u.repo.GetDonationByID(ctx, req.DonationID)
		if err != nil {
			return nil, apperrors.Transport(err)
		}
		values["amount"] = utils.FormatRupiah(donation.Amount)
		values["date"] = donation.DonatedAt.Format("2 January 2006")
		values["category"] = donation.Category
	}

	body := tmpl.Body
	for key, value := range values {
		body = strings.ReplaceAll(body, "{{"+key+"}}", value)
	}

	return &models.RenderedMessage{
		TemplateID: tmpl.ID,
		Body:       body,
	}, nil
}
