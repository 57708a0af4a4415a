package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/services/ziswaf/mocks"
)

func newTestUC(t *testing.T) (*ZiswafUC, *mocks.MockZiswafRepo, *mocks.MockZiswafGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockZiswafRepo(ctrl)
	mockGW := mocks.NewMockZiswafGW(ctrl)
	cfg := &models.Config{Auth: models.AuthConfig{RequestTimeout: 10}}

	return NewZiswafUC(mockRepo, mockGW, cfg), mockRepo, mockGW
}

func TestRenderTemplate_FillsPlaceholders(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	tmplID := uuid.New()
	donorID := uuid.New()
	donationID := uuid.New()

	mockRepo.EXPECT().GetTemplateByID(gomock.Any(), tmplID.String()).Return(&models.MessageTemplate{
		ID:       tmplID,
		Title:    "Receipt",
		Body:     "Terima kasih {{name}}, donasi {{category}} sebesar {{amount}} pada {{date}} telah kami terima.",
		Category: models.TemplateReceipt,
	}, nil)
	mockRepo.EXPECT().GetDonorByID(gomock.Any(), donorID.String()).Return(&models.Donor{
		ID:       donorID,
		FullName: "Budi Santoso",
	}, nil)
	mockRepo.EXPECT().GetDonationByID(gomock.Any(), donationID.String()).Return(&models.Donation{
		ID:        donationID,
		Amount:    1500000,
		Category:  models.CategoryZakat,
		DonatedAt: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
	}, nil)

	msg, err := uc.RenderTemplate(context.Background(), tmplID.String(), &models.RenderRequest{
		DonorID:    donorID.String(),
		DonationID: donationID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Terima kasih Budi Santoso, donasi zakat sebesar Rp1.500.000 pada 14 March 2025 telah kami terima.", msg.Body)
	assert.Equal(t, tmplID, msg.TemplateID)
}

func TestRenderTemplate_UnknownPlaceholderLeftIntact(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	tmplID := uuid.New()
	donorID := uuid.New()

	mockRepo.EXPECT().GetTemplateByID(gomock.Any(), tmplID.String()).Return(&models.MessageTemplate{
		ID:   tmplID,
		Body: "Halo {{name}}, salam dari {{organization}}.",
	}, nil)
	mockRepo.EXPECT().GetDonorByID(gomock.Any(), donorID.String()).Return(&models.Donor{
		ID:       donorID,
		FullName: "Budi Santoso",
	}, nil)

	msg, err := uc.RenderTemplate(context.Background(), tmplID.String(), &models.RenderRequest{
		DonorID: donorID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Halo Budi Santoso, salam dari {{organization}}.", msg.Body)
}

func TestRenderTemplate_WithoutDonationSkipsAmountFields(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	tmplID := uuid.New()
	donorID := uuid.New()

	mockRepo.EXPECT().GetTemplateByID(gomock.Any(), tmplID.String()).Return(&models.MessageTemplate{
		ID:   tmplID,
		Body: "Halo {{name}}, tagihan {{amount}}.",
	}, nil)
	mockRepo.EXPECT().GetDonorByID(gomock.Any(), donorID.String()).Return(&models.Donor{
		ID:       donorID,
		FullName: "Budi Santoso",
	}, nil)

	msg, err := uc.RenderTemplate(context.Background(), tmplID.String(), &models.RenderRequest{
		DonorID: donorID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Halo Budi Santoso, tagihan {{amount}}.", msg.Body)
}

func TestCreateTemplate_Validation(t *testing.T) {
	uc, _, _ := newTestUC(t)
	userID := uuid.New().String()

	tests := []struct {
		name string
		req  *models.TemplateRequest
	}{
		{"empty title", &models.TemplateRequest{Body: "b", Category: models.TemplateReminder}},
		{"empty body", &models.TemplateRequest{Title: "t", Category: models.TemplateReminder}},
		{"bad category", &models.TemplateRequest{Title: "t", Body: "b", Category: "spam"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateTemplate(context.Background(), userID, tt.req)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation))
		})
	}
}

func TestUpdateTemplate_CreatorOnly(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	tmplID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New().String()

	mockRepo.EXPECT().GetTemplateByID(gomock.Any(), tmplID.String()).Return(&models.MessageTemplate{
		ID:        tmplID,
		CreatedBy: owner,
	}, nil)

	_, err := uc.UpdateTemplate(context.Background(), stranger, tmplID.String(), &models.TemplateRequest{
		Title:    "t",
		Body:     "b",
		Category: models.TemplateReminder,
	})
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}
