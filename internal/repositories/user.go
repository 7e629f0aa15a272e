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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching either the username or
// the email. Nil parameters are skipped. Returns (nil, nil) when no row matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByUsername returns the user with the given username, or (nil, nil)
// when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated id.
// Uniqueness of username and email is enforced by table constraints;
// a violation surfaces as the driver's unique-violation error.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{email, username, passwordHash}

	var id int64
	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}
