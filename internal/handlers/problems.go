package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
	"github.com/sbilibin2017/boulder-log/internal/services"
)

// ProblemLister defines the interface for listing problems within a location.
type ProblemLister interface {
	ListByLocation(ctx context.Context, userID, locationID int64) ([]models.Problem, error)
}

// ProblemCreator defines the interface for creating a problem.
type ProblemCreator interface {
	Create(ctx context.Context, problem models.Problem) (*models.Problem, error)
}

// CreateProblemRequest represents the JSON body for creating a problem
// swagger:model CreateProblemRequest
type CreateProblemRequest struct {
	// Problem name
	// required: true
	// default: Moonwalk
	ProblemName *string `json:"problem_name"`

	// Grade
	// required: true
	// default: V4
	Grade *string `json:"grade"`

	// Area within the location
	// required: true
	// default: North face
	Area *string `json:"area"`

	// Free-form notes
	// required: true
	// default: crimpy start
	Notes *string `json:"notes"`

	// Whether the problem has been completed
	// required: true
	// default: false
	Sent *bool `json:"sent"`
}

// NewListProblemsHandler returns an HTTP handler listing the problems of one
// of the caller's locations.
// @Summary List problems in a location
// @Tags problems
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {array} models.Problem "Problems"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Location doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{locationID}/problems [get]
// @Security BearerAuth
func NewListProblemsHandler(svc ProblemLister) http.HandlerFunc {
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

		problems, err := svc.ListByLocation(r.Context(), user.ID, locationID)
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
		json.NewEncoder(w).Encode(problems)
	}
}

// NewCreateProblemHandler returns an HTTP handler creating a problem within
// one of the caller's locations. All fields are required; sent may be false.
// @Summary Create a problem
// @Tags problems
// @Accept json
// @Produce json
// @Param locationID path int true "Location ID"
// @Param createProblemRequest body handlers.CreateProblemRequest true "Problem to create"
// @Success 201 {object} models.Problem "Created problem"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Location doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{locationID}/problems [post]
// @Security BearerAuth
func NewCreateProblemHandler(svc ProblemCreator) http.HandlerFunc {
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

		var req CreateProblemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// First missing field wins. A false sent is still present.
		for _, field := range []struct {
			name    string
			present bool
		}{
			{"problem_name", req.ProblemName != nil},
			{"grade", req.Grade != nil},
			{"area", req.Area != nil},
			{"notes", req.Notes != nil},
			{"sent", req.Sent != nil},
		} {
			if !field.present {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field.name))
				return
			}
		}

		problem, err := svc.Create(r.Context(), models.Problem{
			LocationID:  locationID,
			UserID:      user.ID,
			ProblemName: *req.ProblemName,
			Grade:       *req.Grade,
			Area:        *req.Area,
			Notes:       *req.Notes,
			Sent:        *req.Sent,
		})
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
		w.Header().Set("Location", path.Join(r.URL.Path, fmt.Sprintf("%d", problem.ID)))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(problem)
	}
}
