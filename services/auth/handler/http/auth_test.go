package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/services/auth/mocks"
)

func newAuthContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/register",
		`{"full_name": "Siti Rahma", "msisdn": "08123456789", "city": "Bandung"}`)

	mockUC.EXPECT().
		Register(gomock.Any(), &models.RegisterRequest{
			FullName: "Siti Rahma",
			MSISDN:   "08123456789",
			City:     "Bandung",
		}).
		Return(&models.User{ID: uuid.New(), MSISDN: "628123456789", FullName: "Siti Rahma"}, nil)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestRegisterHandler_RoleFieldIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/register",
		`{"full_name": "Siti Rahma", "msisdn": "08123456789", "city": "Bandung", "role": "admin"}`)

	// The exact-match expectation proves the role key never reaches the
	// usecase: RegisterRequest has no field for it to bind to.
	mockUC.EXPECT().
		Register(gomock.Any(), &models.RegisterRequest{
			FullName: "Siti Rahma",
			MSISDN:   "08123456789",
			City:     "Bandung",
		}).
		Return(&models.User{ID: uuid.New(), MSISDN: "628123456789", Role: models.RoleVolunteer}, nil)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.RoleVolunteer, response.Data.Role)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/register",
		`{"full_name": "Siti Rahma", "msisdn": "08123456789", "city": "Bandung"}`)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Conflict("phone number is already registered"))

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "phone number is already registered", response["error"])
}

func TestGenerateOTPHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/otp/generate",
		`{"msisdn": "08123456789"}`)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "08123456789", "").
		Return(nil)

	require.NoError(t, handler.GenerateOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Verification code sent", response["message"])
}

func TestGenerateOTPHandler_RateLimitedSetsRetryAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/otp/generate",
		`{"msisdn": "08123456789"}`)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "08123456789", "").
		Return(apperrors.RateLimited(42 * time.Second))

	require.NoError(t, handler.GenerateOTP(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
}

func TestVerifyOTPHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/otp/verify",
		`{"msisdn": "08123456789", "otp": "482913"}`)

	userID := uuid.New()
	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "08123456789", "482913").
		Return(&models.AuthResponse{
			Token:     "header.payload.signature",
			User:      &models.User{ID: userID, MSISDN: "628123456789"},
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
		}, nil)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "header.payload.signature", response.Data.Token)
}

func TestVerifyOTPHandler_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/otp/verify",
		`{"msisdn": "08123456789", "otp": "000000"}`)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "08123456789", "000000").
		Return(nil, apperrors.InvalidCode("incorrect code"))

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "incorrect code", response["error"])
}

func TestVerifyOTPHandler_BackendDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthContext(http.MethodPost, "/auth/otp/verify",
		`{"msisdn": "08123456789", "otp": "482913"}`)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "08123456789", "482913").
		Return(nil, apperrors.Transport(assertError("redis down")))

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type assertError string

func (e assertError) Error() string { return string(e) }
