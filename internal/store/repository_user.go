package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record registered under email.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.Name, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
