package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/config"
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates,
// and the JWT token lifecycle, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator produces server-assigned user identifiers.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Loaded once at startup; never logged or echoed.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The candidate email must not belong to an existing account; the check is
// an exact, case-sensitive match against the stored value. The unique index
// on the email column backs the check, so a race between two concurrent
// registrations still resolves to exactly one created account.
//
// Returns the persisted user (with a server-assigned ID and CreatedAt) or:
//   - ErrInvalidDataProvided if the email or password is missing.
//   - store.ErrEmailAlreadyExists if the email is taken (no write occurs).
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", request.Email).Msg("registration rejected: email already exists")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("email uniqueness check failed")
		return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.uuidGenerator.Generate(),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Number:       request.Number,
		Gender:       request.Gender,
		Age:          request.Age,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied plaintext
// against the stored bcrypt hash. An unknown email and a wrong password
// both yield ErrInvalidCredentials so the two cases are indistinguishable
// to the caller; a malformed stored hash verifies as false and therefore
// degrades to the same outcome.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Msg("login rejected: unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().Str("user_id", foundUser.ID.String()).Msg("login rejected: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UserByID retrieves the account referenced by an authenticated token's
// subject claim.
//
// Returns store.ErrNoUserWasFound when the account no longer exists.
func (a *authService) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile mutation: only fields present in
// the request are written, absent fields keep their stored values.
//
// Returns ErrNoFieldsToUpdate when the request carries nothing to apply.
func (a *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Empty() {
		log.Error().Str("user_id", userID.String()).Msg("profile update with no fields")
		return models.User{}, ErrNoFieldsToUpdate
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the user's ID and email,
// and expires after tokenDuration. Every call mints a distinct token (a
// fresh "jti" claim guarantees this even within one clock second).
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry, the issuer claim, and the UUID shape of the subject. Any
// validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors — and cannot leak
// which check failed.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
