package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error variables
var (
	// ErrMissingBearerToken is returned when the Authorization header is
	// absent or does not carry a bearer token.
	ErrMissingBearerToken = errors.New("missing bearer token")

	// ErrInvalidToken covers a bad signature, a malformed token and an
	// expired token alike. Callers must not learn which one it was.
	ErrInvalidToken = errors.New("invalid or expired token")
)

const bearerPrefix = "Bearer "

// Claims is the payload carried by an issued token.
// The registered subject holds the username.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HMAC-signed bearer tokens.
// Secret and expiration are fixed at construction.
type JWT struct {
	secretKey string
	exp       time.Duration
	now       func() time.Time
}

// New creates a new JWT service.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		secretKey: secretKey,
		exp:       expiration,
		now:       time.Now,
	}
}

// Generate creates a signed token with the given subject and user id claim.
// Expiry is issued-at plus the configured TTL.
func (j *JWT) Generate(ctx context.Context, subject string, userID int64) (string, error) {
	issuedAt := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies a token string and returns its claims.
// Any verification failure comes back as ErrInvalidToken.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetTokenFromRequest extracts the raw token from the Authorization header.
// The "Bearer " prefix is matched case-insensitively.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMissingBearerToken
	}
	return authHeader[len(bearerPrefix):], nil
}
