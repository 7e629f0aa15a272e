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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token
	// default: JWT_TOKEN
	AuthToken string `json:"authToken"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Incorrect username or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// Unknown username and wrong password answer the same body.
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing field / incorrect username or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		for _, field := range []struct {
			name  string
			value string
		}{
			{"username", req.Username},
			{"password", req.Password},
		} {
			if field.value == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: fmt.Sprintf("Missing '%s' in request body", field.name),
				})
				return
			}
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Incorrect username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AuthToken: token,
		})
	}
}
