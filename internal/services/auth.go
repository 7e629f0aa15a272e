package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// pgUniqueViolation is the Postgres error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// passwordHashCost is the bcrypt cost factor for stored passwords.
const passwordHashCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (int64, error)
}

// TokenGenerator defines an interface for issuing signed tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string, userID int64) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a token for the fresh account.
// The existence pre-check gives the friendly duplicate error; the unique
// constraints on the users table close the race between check and insert.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, email, username, string(hashedPassword))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, username, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Login authenticates a user and returns a token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
