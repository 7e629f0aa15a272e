package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

type ProblemReadRepository struct {
	db *sqlx.DB
}

func NewProblemReadRepository(db *sqlx.DB) *ProblemReadRepository {
	return &ProblemReadRepository{db: db}
}

// ListByLocationID returns the user's problems within a location, ordered by name.
func (r *ProblemReadRepository) ListByLocationID(ctx context.Context, userID, locationID int64) ([]models.Problem, error) {
	const query = `
		SELECT id, location_id, user_id, problem_name, grade, area, notes, sent
		FROM problems
		WHERE user_id = $1 AND location_id = $2
		ORDER BY problem_name
	`

	problems := []models.Problem{}
	err := r.db.SelectContext(ctx, &problems, query, userID, locationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, locationID},
		"result", len(problems),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return problems, nil
}

// GetByID returns the problem with the given id if it belongs to the user.
// Returns (nil, nil) when no such row exists, including rows owned by others.
func (r *ProblemReadRepository) GetByID(ctx context.Context, userID, problemID int64) (*models.Problem, error) {
	const query = `
		SELECT id, location_id, user_id, problem_name, grade, area, notes, sent
		FROM problems
		WHERE user_id = $1 AND id = $2
	`

	var problem models.Problem
	err := r.db.GetContext(ctx, &problem, query, userID, problemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, problemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &problem, nil
}

type ProblemWriteRepository struct {
	db *sqlx.DB
}

func NewProblemWriteRepository(db *sqlx.DB) *ProblemWriteRepository {
	return &ProblemWriteRepository{db: db}
}

// Save inserts a new problem and returns the stored row.
func (r *ProblemWriteRepository) Save(ctx context.Context, problem models.Problem) (*models.Problem, error) {
	const query = `
		INSERT INTO problems (location_id, user_id, problem_name, grade, area, notes, sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, location_id, user_id, problem_name, grade, area, notes, sent
	`
	args := []any{problem.LocationID, problem.UserID, problem.ProblemName, problem.Grade, problem.Area, problem.Notes, problem.Sent}

	var saved models.Problem
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Update applies a partial update to a problem owned by the user and returns
// the number of affected rows. Nil fields keep their stored value.
func (r *ProblemWriteRepository) Update(ctx context.Context, userID, problemID int64, upd models.ProblemUpdate) (int64, error) {
	const query = `
		UPDATE problems
		SET problem_name = COALESCE($1::VARCHAR, problem_name),
		    grade = COALESCE($2::VARCHAR, grade),
		    area = COALESCE($3::VARCHAR, area),
		    notes = COALESCE($4::VARCHAR, notes),
		    sent = COALESCE($5::BOOLEAN, sent)
		WHERE user_id = $6 AND id = $7
	`
	args := []any{upd.ProblemName, upd.Grade, upd.Area, upd.Notes, upd.Sent, userID, problemID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// Delete removes a problem owned by the user and returns the number of
// affected rows.
func (r *ProblemWriteRepository) Delete(ctx context.Context, userID, problemID int64) (int64, error) {
	const query = `
		DELETE FROM problems
		WHERE user_id = $1 AND id = $2
	`
	args := []any{userID, problemID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
