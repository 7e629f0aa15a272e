package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
)

// ErrLocationNotFound is returned when a location does not exist for the
// requesting user. Rows owned by other users look exactly the same.
var ErrLocationNotFound = errors.New("location doesn't exist")

// LocationReader defines read-only operations for locations.
type LocationReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Location, error)
	GetByID(ctx context.Context, userID, locationID int64) (*models.Location, error)
}

// LocationWriter defines write operations for locations.
type LocationWriter interface {
	Save(ctx context.Context, userID int64, locationName string) (*models.Location, error)
	Update(ctx context.Context, userID, locationID int64, locationName string) (int64, error)
	Delete(ctx context.Context, userID, locationID int64) (int64, error)
}

// LocationService handles location CRUD scoped to the owning user.
type LocationService struct {
	reader LocationReader
	writer LocationWriter
}

// NewLocationService creates a new LocationService instance.
func NewLocationService(reader LocationReader, writer LocationWriter) *LocationService {
	return &LocationService{
		reader: reader,
		writer: writer,
	}
}

// List returns all of the user's locations.
func (svc *LocationService) List(ctx context.Context, userID int64) ([]models.Location, error) {
	locations, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list locations", "user_id", userID, "err", err)
		return nil, err
	}
	return locations, nil
}

// Create stores a new location for the user.
func (svc *LocationService) Create(ctx context.Context, userID int64, locationName string) (*models.Location, error) {
	location, err := svc.writer.Save(ctx, userID, locationName)
	if err != nil {
		logger.Log.Errorw("failed to save location", "user_id", userID, "err", err)
		return nil, err
	}
	return location, nil
}

// Get returns one of the user's locations by id.
func (svc *LocationService) Get(ctx context.Context, userID, locationID int64) (*models.Location, error) {
	location, err := svc.reader.GetByID(ctx, userID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to get location", "user_id", userID, "location_id", locationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

// Update renames one of the user's locations.
func (svc *LocationService) Update(ctx context.Context, userID, locationID int64, locationName string) error {
	rowsAffected, err := svc.writer.Update(ctx, userID, locationID, locationName)
	if err != nil {
		logger.Log.Errorw("failed to update location", "user_id", userID, "location_id", locationID, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

// Delete removes one of the user's locations and, via cascade, its problems.
func (svc *LocationService) Delete(ctx context.Context, userID, locationID int64) error {
	rowsAffected, err := svc.writer.Delete(ctx, userID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to delete location", "user_id", userID, "location_id", locationID, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}
