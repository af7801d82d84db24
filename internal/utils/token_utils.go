package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// ErrTokenClaims is returned when a token parses but its custom claims are unusable.
var ErrTokenClaims = errors.New("token claims are malformed")

// Claims is the payload signed into every token.
type Claims struct {
	UserID string    `json:"id"`
	Type   TokenType `json:"type"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token for userID that expires after expiryDuration.
// Each token carries a random jti so two tokens issued in the same second differ.
func GenerateJWT(userID string, tokenType TokenType, secret string, expiryDuration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string, validates its signature and expiry,
// and checks that it carries a user id of the expected type.
func ParseAndValidateJWT(tokenString string, secretKey string, expected TokenType) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	if claims.UserID == "" || claims.Type != expected {
		return nil, ErrTokenClaims
	}

	return claims, nil
}
