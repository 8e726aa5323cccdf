// Package auth implements the session-token codec: a small claims payload
// signed into an opaque bearer token and verified with expiry enforcement.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard-api/internal/domain"
)

var (
	// ErrMissingToken indicates the Authorization header carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken covers signature mismatch, malformed payload, and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload embedded in a signed session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string          `json:"userId"`
	UserType domain.UserType `json:"userType"`
}

// TokenIssuer signs and verifies session tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue mints a signed token for the given user. Expiry is exactly
// issuance time plus the configured TTL.
func (i *TokenIssuer) Issue(userID string, userType domain.UserType) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID:   userID,
		UserType: userType,
	})
	return token.SignedString(i.secret)
}

// Parse verifies the signature and expiry of a token string and returns
// its claims. Any failure maps to ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearer pulls the token out of an "Authorization: Bearer <token>"
// header value.
func ExtractBearer(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
