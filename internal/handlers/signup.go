package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (string, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Bearer token for the new account
	// default: JWT_TOKEN
	AuthToken string `json:"authToken"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Username or email already taken
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account and returns a bearer token for it. Username and email must be unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User created, token returned"
// @Failure 400 {object} handlers.SignupErrorResponse "Missing field / username or email already taken"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		// First missing field wins.
		for _, field := range []struct {
			name  string
			value string
		}{
			{"email", req.Email},
			{"username", req.Username},
			{"password", req.Password},
		} {
			if field.value == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: fmt.Sprintf("Missing '%s' in request body", field.name),
				})
				return
			}
		}

		token, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Username or email already taken",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			AuthToken: token,
		})
	}
}
