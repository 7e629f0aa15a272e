package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
	"github.com/sbilibin2017/boulder-log/internal/services"
)

// LocationGetter defines the interface for fetching a single location.
type LocationGetter interface {
	Get(ctx context.Context, userID, locationID int64) (*models.Location, error)
}

// LocationUpdater defines the interface for renaming a location.
type LocationUpdater interface {
	Update(ctx context.Context, userID, locationID int64, locationName string) error
}

// LocationDeleter defines the interface for deleting a location.
type LocationDeleter interface {
	Delete(ctx context.Context, userID, locationID int64) error
}

// UpdateLocationRequest represents the JSON body for renaming a location
// swagger:model UpdateLocationRequest
type UpdateLocationRequest struct {
	// Location name
	// required: true
	// default: Crag B
	LocationName string `json:"location_name"`
}

// NewGetLocationHandler returns an HTTP handler fetching one location.
// Foreign and unknown ids are both a 404.
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} models.Location "Location"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Location doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{locationID} [get]
// @Security BearerAuth
func NewGetLocationHandler(svc LocationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		locationID, err := pathID(r, "locationID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Location doesn't exist")
			return
		}

		location, err := svc.Get(r.Context(), user.ID, locationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				writeError(w, http.StatusNotFound, "Location doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(location)
	}
}

// NewUpdateLocationHandler returns an HTTP handler renaming a location.
// @Summary Rename a location
// @Tags locations
// @Accept json
// @Param locationID path int true "Location ID"
// @Param updateLocationRequest body handlers.UpdateLocationRequest true "New name"
// @Success 204 "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Location doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{locationID} [patch]
// @Security BearerAuth
func NewUpdateLocationHandler(svc LocationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		locationID, err := pathID(r, "locationID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Location doesn't exist")
			return
		}

		var req UpdateLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.LocationName == "" {
			writeError(w, http.StatusBadRequest, "Request body must contain 'location_name'")
			return
		}

		if err := svc.Update(r.Context(), user.ID, locationID, req.LocationName); err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				writeError(w, http.StatusNotFound, "Location doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteLocationHandler returns an HTTP handler deleting a location.
// @Summary Delete a location
// @Tags locations
// @Param locationID path int true "Location ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Location doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{locationID} [delete]
// @Security BearerAuth
func NewDeleteLocationHandler(svc LocationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		locationID, err := pathID(r, "locationID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Location doesn't exist")
			return
		}

		if err := svc.Delete(r.Context(), user.ID, locationID); err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				writeError(w, http.StatusNotFound, "Location doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
