package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

// LocationLister defines the interface for listing a user's locations.
type LocationLister interface {
	List(ctx context.Context, userID int64) ([]models.Location, error)
}

// LocationCreator defines the interface for creating a location.
type LocationCreator interface {
	Create(ctx context.Context, userID int64, locationName string) (*models.Location, error)
}

// CreateLocationRequest represents the JSON body for creating a location
// swagger:model CreateLocationRequest
type CreateLocationRequest struct {
	// Location name
	// required: true
	// default: Crag A
	LocationName string `json:"location_name"`
}

// NewListLocationsHandler returns an HTTP handler listing the caller's locations.
// @Summary List locations
// @Description Returns all locations owned by the authenticated user, ordered by name.
// @Tags locations
// @Produce json
// @Success 200 {array} models.Location "Locations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations [get]
// @Security BearerAuth
func NewListLocationsHandler(svc LocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		locations, err := svc.List(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(locations)
	}
}

// NewCreateLocationHandler returns an HTTP handler creating a location.
// @Summary Create a location
// @Description Creates a new location owned by the authenticated user.
// @Tags locations
// @Accept json
// @Produce json
// @Param createLocationRequest body handlers.CreateLocationRequest true "Location to create"
// @Success 201 {object} models.Location "Created location"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations [post]
// @Security BearerAuth
func NewCreateLocationHandler(svc LocationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req CreateLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.LocationName == "" {
			writeError(w, http.StatusBadRequest, "Missing 'location_name' in request body")
			return
		}

		location, err := svc.Create(r.Context(), user.ID, req.LocationName)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Location", path.Join(r.URL.Path, fmt.Sprintf("%d", location.ID)))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(location)
	}
}
