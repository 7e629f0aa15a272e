package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/boulder-log/internal/jwt"
	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves the token subject to a stored user.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// authErrorResponse is the JSON body for rejected requests.
type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that gates requests on a valid bearer
// token and a known subject. A bad signature, an expired token and an unknown
// subject all answer the same 401 body so callers cannot tell them apart.
// A store failure during lookup is a 500, never a 401.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Missing bearer token"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized request"})
				return
			}

			user, err := users.GetByUsername(ctx, claims.Subject)
			if err != nil {
				logger.Log.Errorw("failed to look up token subject", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Internal server error"})
				return
			}
			if user == nil {
				logger.Log.Errorw("token subject does not exist", "subject", claims.Subject)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized request"})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
