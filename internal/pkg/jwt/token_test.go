package jwt

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.Expiration = 10080 // 7 days in minutes
	cfg.JWT.Issuer = "ziswaf-manager-test"
	return cfg
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	msisdn := "6281234567890"

	token, expiresAt, err := GenerateToken(userID, msisdn, cfg)
	require.NoError(t, err)

	// Three dot-separated URL-safe segments.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	assert.NotContains(t, token, "=")

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, msisdn, claims.MSISDN)
	assert.Equal(t, expiresAt, claims.ExpiresAt)

	// 7-day expiry within a small tolerance.
	expected := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, expected, expiresAt, 60)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1 // expiry already in the past

	token, _, err := GenerateToken(uuid.New(), "6281234567890", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()
	token, _, err := GenerateToken(uuid.New(), "6281234567890", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestValidateToken_EmptySecret(t *testing.T) {
	_, err := ValidateToken("a.b.c", "")
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestValidateToken_MalformedSegments(t *testing.T) {
	cfg := testConfig()
	for _, input := range []string{"", "onlyone", "two.parts", "a.b.c.d", "..."} {
		_, err := ValidateToken(input, cfg.JWT.Secret)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	cfg := testConfig()
	token, _, err := GenerateToken(uuid.New(), "6281234567890", cfg)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flipping any single character of the payload must break validation.
	payload := parts[1]
	for i := 0; i < len(payload); i++ {
		mutated := []byte(payload)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == payload {
			continue
		}
		tampered := parts[0] + "." + string(mutated) + "." + parts[2]
		_, err := ValidateToken(tampered, cfg.JWT.Secret)
		assert.Error(t, err, "tampered at position %d", i)
	}
}

func TestValidateToken_WrongType(t *testing.T) {
	cfg := testConfig()

	claims := jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"msisdn":  "6281234567890",
		"typ":     "refresh",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestValidateToken_UnsignedAlgRejected(t *testing.T) {
	cfg := testConfig()

	claims := jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"msisdn":  "6281234567890",
		"typ":     TokenType,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""

	_, _, err := GenerateToken(uuid.New(), "6281234567890", cfg)
	assert.Error(t, err)
}
