package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

func donorRows(donor *models.Donor) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "msisdn", "city", "address", "notes",
		"created_by", "created_at", "updated_at",
	}).AddRow(
		donor.ID, donor.FullName, donor.MSISDN, donor.City, donor.Address,
		donor.Notes, donor.CreatedBy, donor.CreatedAt, donor.UpdatedAt,
	)
}

func TestGetDonorByID(t *testing.T) {
	donorID := uuid.MustParse("650e8400-e29b-41d4-a716-446655440001")

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, donor *models.Donor, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				msisdn := "6281234567890"
				donor := &models.Donor{
					ID:        donorID,
					FullName:  "Budi Santoso",
					MSISDN:    &msisdn,
					City:      "Bandung",
					CreatedBy: uuid.New(),
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				mock.ExpectQuery(`^\s*SELECT (.+) FROM donors WHERE id`).
					WithArgs(donorID.String()).
					WillReturnRows(donorRows(donor))
			},
			assertFunc: func(t *testing.T, donor *models.Donor, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Budi Santoso", donor.FullName)
				require.NotNil(t, donor.MSISDN)
				assert.Equal(t, "6281234567890", *donor.MSISDN)
			},
		},
		{
			name: "NotFound",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`^\s*SELECT (.+) FROM donors WHERE id`).
					WithArgs(donorID.String()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertFunc: func(t *testing.T, donor *models.Donor, err error) {
				assert.Nil(t, donor)
				assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupZiswafRepoTest(t)
			tc.mockSetup(mock)

			donor, err := repo.GetDonorByID(context.Background(), donorID.String())
			tc.assertFunc(t, donor, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateDonor(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE donors").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "NoRowsUpdated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE donors").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupZiswafRepoTest(t)
			tc.mockSetup(mock)

			donor := &models.Donor{
				ID:        uuid.New(),
				FullName:  "Budi Santoso",
				City:      "Bandung",
				CreatedBy: uuid.New(),
			}
			err := repo.UpdateDonor(context.Background(), donor)
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetUserTeam(t *testing.T) {
	repo, mock := setupZiswafRepoTest(t)
	userID := uuid.New()
	teamID := uuid.New()

	mock.ExpectExec("^UPDATE users").
		WithArgs(userID, teamID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetUserTeam(context.Background(), userID, teamID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
