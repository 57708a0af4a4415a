package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// TokenType is the declared type of every session token. Tokens bearing
// any other type are rejected.
const TokenType = "auth"

// TokenClaims is the identity a validated token carries
type TokenClaims struct {
	UserID    uuid.UUID
	MSISDN    string
	ExpiresAt int64
}

// GenerateToken issues an HS256 session token for the given user.
// The token is the standard three-segment URL-safe form
// header.payload.signature.
func GenerateToken(userID uuid.UUID, msisdn string, cfg *models.Config) (string, int64, error) {
	if cfg.JWT.Secret == "" {
		return "", 0, fmt.Errorf("jwt secret is not configured")
	}

	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"msisdn":  msisdn,
		"typ":     TokenType,
		"iat":     now.Unix(),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns the embedded
// identity. Every failure mode - malformed token, bad signature, expiry
// in the past, wrong declared type - comes back as an unauthorized error,
// never a panic or a partial result.
func ValidateToken(tokenString string, secret string) (*TokenClaims, error) {
	if secret == "" {
		return nil, apperrors.Unauthorized("invalid token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != TokenType {
		return nil, apperrors.Unauthorized("invalid token type")
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid user id in token")
	}

	msisdn, _ := claims["msisdn"].(string)
	if msisdn == "" {
		return nil, apperrors.Unauthorized("missing msisdn in token")
	}

	var expiresAt int64
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = int64(exp)
	}

	return &TokenClaims{
		UserID:    userID,
		MSISDN:    msisdn,
		ExpiresAt: expiresAt,
	}, nil
}
