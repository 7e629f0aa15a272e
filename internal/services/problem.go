package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

// ErrProblemNotFound is returned when a problem does not exist for the
// requesting user.
var ErrProblemNotFound = errors.New("problem doesn't exist")

// ProblemReader defines read-only operations for problems.
type ProblemReader interface {
	ListByLocationID(ctx context.Context, userID, locationID int64) ([]models.Problem, error)
	GetByID(ctx context.Context, userID, problemID int64) (*models.Problem, error)
}

// ProblemWriter defines write operations for problems.
type ProblemWriter interface {
	Save(ctx context.Context, problem models.Problem) (*models.Problem, error)
	Update(ctx context.Context, userID, problemID int64, upd models.ProblemUpdate) (int64, error)
	Delete(ctx context.Context, userID, problemID int64) (int64, error)
}

// ProblemService handles problem CRUD scoped to the owning user.
// Nested operations verify the parent location first so foreign locations
// answer not-found.
type ProblemService struct {
	reader    ProblemReader
	writer    ProblemWriter
	locations LocationReader
}

// NewProblemService creates a new ProblemService instance.
func NewProblemService(reader ProblemReader, writer ProblemWriter, locations LocationReader) *ProblemService {
	return &ProblemService{
		reader:    reader,
		writer:    writer,
		locations: locations,
	}
}

// ListByLocation returns the user's problems within one of their locations.
func (svc *ProblemService) ListByLocation(ctx context.Context, userID, locationID int64) ([]models.Problem, error) {
	location, err := svc.locations.GetByID(ctx, userID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to get location", "user_id", userID, "location_id", locationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	problems, err := svc.reader.ListByLocationID(ctx, userID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to list problems", "user_id", userID, "location_id", locationID, "err", err)
		return nil, err
	}
	return problems, nil
}

// Create stores a new problem within one of the user's locations.
func (svc *ProblemService) Create(ctx context.Context, problem models.Problem) (*models.Problem, error) {
	location, err := svc.locations.GetByID(ctx, problem.UserID, problem.LocationID)
	if err != nil {
		logger.Log.Errorw("failed to get location", "user_id", problem.UserID, "location_id", problem.LocationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	saved, err := svc.writer.Save(ctx, problem)
	if err != nil {
		logger.Log.Errorw("failed to save problem", "user_id", problem.UserID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Get returns one of the user's problems by id.
func (svc *ProblemService) Get(ctx context.Context, userID, problemID int64) (*models.Problem, error) {
	problem, err := svc.reader.GetByID(ctx, userID, problemID)
	if err != nil {
		logger.Log.Errorw("failed to get problem", "user_id", userID, "problem_id", problemID, "err", err)
		return nil, err
	}
	if problem == nil {
		return nil, ErrProblemNotFound
	}
	return problem, nil
}

// Update applies a partial update to one of the user's problems.
func (svc *ProblemService) Update(ctx context.Context, userID, problemID int64, upd models.ProblemUpdate) error {
	rowsAffected, err := svc.writer.Update(ctx, userID, problemID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update problem", "user_id", userID, "problem_id", problemID, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrProblemNotFound
	}
	return nil
}

// Delete removes one of the user's problems.
func (svc *ProblemService) Delete(ctx context.Context, userID, problemID int64) error {
	rowsAffected, err := svc.writer.Delete(ctx, userID, problemID)
	if err != nil {
		logger.Log.Errorw("failed to delete problem", "user_id", userID, "problem_id", problemID, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrProblemNotFound
	}
	return nil
}
