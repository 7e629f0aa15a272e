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

type LocationReadRepository struct {
	db *sqlx.DB
}

func NewLocationReadRepository(db *sqlx.DB) *LocationReadRepository {
	return &LocationReadRepository{db: db}
}

// ListByUserID returns all locations owned by the user, ordered by name.
func (r *LocationReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Location, error) {
	const query = `
		SELECT id, user_id, location_name
		FROM locations
		WHERE user_id = $1
		ORDER BY location_name
	`

	locations := []models.Location{}
	err := r.db.SelectContext(ctx, &locations, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return locations, nil
}

// GetByID returns the location with the given id if it belongs to the user.
// Returns (nil, nil) when no such row exists, including rows owned by others.
func (r *LocationReadRepository) GetByID(ctx context.Context, userID, locationID int64) (*models.Location, error) {
	const query = `
		SELECT id, user_id, location_name
		FROM locations
		WHERE user_id = $1 AND id = $2
	`

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, userID, locationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, locationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &location, nil
}

type LocationWriteRepository struct {
	db *sqlx.DB
}

func NewLocationWriteRepository(db *sqlx.DB) *LocationWriteRepository {
	return &LocationWriteRepository{db: db}
}

// Save inserts a new location and returns the stored row.
func (r *LocationWriteRepository) Save(ctx context.Context, userID int64, locationName string) (*models.Location, error) {
	const query = `
		INSERT INTO locations (user_id, location_name)
		VALUES ($1, $2)
		RETURNING id, user_id, location_name
	`
	args := []any{userID, locationName}

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &location, nil
}

// Update renames a location owned by the user and returns the number of
// affected rows. Zero means the row does not exist for this user.
func (r *LocationWriteRepository) Update(ctx context.Context, userID, locationID int64, locationName string) (int64, error) {
	const query = `
		UPDATE locations
		SET location_name = $1
		WHERE user_id = $2 AND id = $3
	`
	args := []any{locationName, userID, locationID}

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

// Delete removes a location owned by the user and returns the number of
// affected rows. Problems within the location go with it via FK cascade.
func (r *LocationWriteRepository) Delete(ctx context.Context, userID, locationID int64) (int64, error) {
	const query = `
		DELETE FROM locations
		WHERE user_id = $1 AND id = $2
	`
	args := []any{userID, locationID}

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
