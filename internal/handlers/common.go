package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/boulder-log/internal/middlewares"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

// ErrorResponse is the uniform error envelope for resource handlers
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Location doesn't exist
	Error string `json:"error"`
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// userFromRequest pulls the authenticated user out of the request context.
// Handlers behind the auth middleware always find one; a missing user means
// the route was wired without the gate.
func userFromRequest(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized request")
		return nil, false
	}
	return user, true
}

// pathID parses a numeric chi URL parameter. A non-numeric id cannot match
// any row, so callers treat the error as not-found.
func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}
