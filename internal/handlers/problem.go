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

// ProblemGetter defines the interface for fetching a single problem.
type ProblemGetter interface {
	Get(ctx context.Context, userID, problemID int64) (*models.Problem, error)
}

// ProblemUpdater defines the interface for partially updating a problem.
type ProblemUpdater interface {
	Update(ctx context.Context, userID, problemID int64, upd models.ProblemUpdate) error
}

// ProblemDeleter defines the interface for deleting a problem.
type ProblemDeleter interface {
	Delete(ctx context.Context, userID, problemID int64) error
}

// UpdateProblemRequest represents the JSON body for a partial problem update.
// Absent fields keep their stored value.
// swagger:model UpdateProblemRequest
type UpdateProblemRequest struct {
	// Problem name
	// default: Moonwalk
	ProblemName *string `json:"problem_name"`

	// Grade
	// default: V5
	Grade *string `json:"grade"`

	// Area within the location
	// default: North face
	Area *string `json:"area"`

	// Free-form notes
	// default: finally stuck the dyno
	Notes *string `json:"notes"`

	// Whether the problem has been completed
	// default: true
	Sent *bool `json:"sent"`
}

// NewGetProblemHandler returns an HTTP handler fetching one problem.
// Foreign and unknown ids are both a 404.
// @Summary Get a problem
// @Tags problems
// @Produce json
// @Param problemID path int true "Problem ID"
// @Success 200 {object} models.Problem "Problem"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Problem doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/problems/{problemID} [get]
// @Security BearerAuth
func NewGetProblemHandler(svc ProblemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		problemID, err := pathID(r, "problemID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Problem doesn't exist")
			return
		}

		problem, err := svc.Get(r.Context(), user.ID, problemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProblemNotFound):
				writeError(w, http.StatusNotFound, "Problem doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(problem)
	}
}

// NewUpdateProblemHandler returns an HTTP handler partially updating a problem.
// @Summary Update a problem
// @Tags problems
// @Accept json
// @Param problemID path int true "Problem ID"
// @Param updateProblemRequest body handlers.UpdateProblemRequest true "Fields to update"
// @Success 204 "Updated"
// @Failure 400 {object} handlers.ErrorResponse "No updatable field present"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Problem doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/problems/{problemID} [patch]
// @Security BearerAuth
func NewUpdateProblemHandler(svc ProblemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		problemID, err := pathID(r, "problemID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Problem doesn't exist")
			return
		}

		var req UpdateProblemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upd := models.ProblemUpdate{
			ProblemName: req.ProblemName,
			Grade:       req.Grade,
			Area:        req.Area,
			Notes:       req.Notes,
			Sent:        req.Sent,
		}
		if upd.Empty() {
			writeError(w, http.StatusBadRequest,
				"Request body must contain 'problem_name', 'grade', 'area', 'notes' or 'sent'")
			return
		}

		if err := svc.Update(r.Context(), user.ID, problemID, upd); err != nil {
			switch {
			case errors.Is(err, services.ErrProblemNotFound):
				writeError(w, http.StatusNotFound, "Problem doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteProblemHandler returns an HTTP handler deleting a problem.
// @Summary Delete a problem
// @Tags problems
// @Param problemID path int true "Problem ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Problem doesn't exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/problems/{problemID} [delete]
// @Security BearerAuth
func NewDeleteProblemHandler(svc ProblemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		problemID, err := pathID(r, "problemID")
		if err != nil {
			writeError(w, http.StatusNotFound, "Problem doesn't exist")
			return
		}

		if err := svc.Delete(r.Context(), user.ID, problemID); err != nil {
			switch {
			case errors.Is(err, services.ErrProblemNotFound):
				writeError(w, http.StatusNotFound, "Problem doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
