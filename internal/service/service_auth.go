package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, auth-hash verification and JWT token
// lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The client sends the auth hash and salt it derived locally; the server only
// validates presence and delegates persistence to the UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Email, AuthHash or AuthSalt is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.AuthHash == "" || user.AuthSalt == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the stored auth hash against
// the one the client derived from the password and the published salt.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or AuthHash is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the auth hashes do not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.AuthHash == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(foundUser.AuthHash), []byte(user.AuthHash)) != 1 {
		log.Error().
			Str("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// AuthParams returns the auth salt stored for email during registration. The
// salt is public derivation input, not a secret, so the endpoint is
// unauthenticated.
func (a *authService) AuthParams(ctx context.Context, email string) (models.AuthParamsResponse, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid user data provided")
		return models.AuthParamsResponse{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthParamsResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return models.AuthParamsResponse{AuthSalt: foundUser.AuthSalt}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// WelcomeSent reports whether the one-time greeting was already delivered.
func (a *authService) WelcomeSent(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return false, ErrInvalidDataProvided
	}

	sent, err := a.userRepository.WelcomeSent(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("welcome flag lookup failed")
		return false, fmt.Errorf("welcome flag lookup failed: %w", err)
	}

	return sent, nil
}

// MarkWelcomeSent flips the welcome flag. Repeat calls are harmless.
func (a *authService) MarkWelcomeSent(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.MarkWelcomeSent(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("welcome flag update failed")
		return fmt.Errorf("welcome flag update failed: %w", err)
	}

	return nil
}
