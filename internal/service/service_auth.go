package service

import (
	"context"
	"fmt"
	"time"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/internal/validators"
	"github.com/anaszait/tadabbur/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// The email and password are validated, the password is hashed with bcrypt
// and persistence is delegated to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID, plaintext
// password wiped) or:
//   - a validators sentinel wrapped in ErrInvalidDataProvided when the
//     credentials are unusable;
//   - a wrapped storage error when the repository call fails (duplicate
//     email surfaces as store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCredentials(user.Email, user.Password); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if email or password is empty;
//   - a wrapped storage error if the lookup fails (unknown email surfaces
//     as store.ErrNoUserWasFound);
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, user.Password) {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
