package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice", 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t,
		claims.IssuedAt.Add(time.Minute),
		claims.ExpiresAt.Time,
	)
}

func TestJWT_DeterministicIssuance(t *testing.T) {
	// Two tokens issued at the same instant with the same secret, subject,
	// TTL and user id claim must be byte-identical.
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	j1 := New("test-secret", time.Minute)
	j1.now = func() time.Time { return issuedAt }
	j2 := New("test-secret", time.Minute)
	j2.now = func() time.Time { return issuedAt }

	ctx := context.Background()
	t1, err := j1.Generate(ctx, "alice", 42)
	assert.NoError(t, err)
	t2, err := j2.Generate(ctx, "alice", 42)
	assert.NoError(t, err)

	assert.Equal(t, t1, t2)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	j.now = func() time.Time { return time.Now().Add(-time.Hour) } // issue in the past

	ctx := context.Background()
	token, err := j.Generate(ctx, "alice", 42)
	assert.NoError(t, err)

	verifier := New("test-secret", time.Minute)
	claims, err := verifier.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	j := New("test-secret", time.Minute)
	token, err := j.Generate(ctx, "alice", 42)
	assert.NoError(t, err)

	other := New("other-secret", time.Minute)
	claims, err := other.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	// A token signed with "none" must be rejected.
	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{
		UserID: 42,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	token, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	j := New("test-secret", time.Minute)
	claims, err := j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_MalformedToken(t *testing.T) {
	j := New("test-secret", time.Minute)

	claims, err := j.GetClaims(context.Background(), "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"MixedCaseBearer", "BeArEr mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"WrongScheme", "Token mytoken123", "", true},
		{"BarePrefix", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrMissingBearerToken)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
