package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/policy"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// dummyPassword is hashed once to give unknown usernames a record to verify
// against, so that they cost as much as a wrong password.
const dummyPassword = "go-pass-vault/dummy-credential"

// authService is the concrete implementation of AuthService.
// It creates and verifies master credentials using a UserRepository for
// persistence and a PasswordHasher for the slow salted hash.
//
// Neither passwords nor hash records are ever logged.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies self-describing hash records.
	hasher crypto.PasswordHasher

	// master is the policy every new master password must satisfy.
	master *policy.Engine

	validator validators.Validator

	dummyOnce   sync.Once
	dummyRecord string

	now func() time.Time

	// logger is used when the call context carries no logger of its own.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		master:         policy.NewMasterPolicy(),
		validator:      validators.NewVaultValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new master credential.
//
// The username is trimmed and NFC-normalized, the email trimmed and
// lower-cased. The password must satisfy the master policy; a failing
// password yields a *policy.ViolationError listing every unmet rule.
//
// Returns the owner capability of the new account or:
//   - ErrInvalidInput for an empty username or malformed email.
//   - ErrStorageConflict if the username or email is taken.
func (a *authService) Register(ctx context.Context, username, email, password string) (models.Owner, error) {
	log := logger.FromContextOr(ctx, a.logger)

	req := models.RegisterRequest{
		Username: validators.NormalizeText(username),
		Email:    normalizeEmail(email),
		Password: password,
	}
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid registration data provided")
		return models.Owner{}, mapValidationError(err)
	}

	if err := a.master.Check(password); err != nil {
		log.Debug().Str("func", "*authService.Register").Msg("master password rejected by policy")
		return models.Owner{}, err
	}

	now := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: a.hasher.Hash(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.Owner{}, mapStoreError(err)
	}

	log.Info().Str("func", "*authService.Register").Int64("user_id", user.UserID).Msg("master credential registered")
	return user.Owner()
}

// Login verifies a username/password pair and mints the owner capability.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// When the stored record was produced with outdated parameters (or by the
// legacy bcrypt scheme) it is rewritten; a failed rewrite does not fail the
// login.
func (a *authService) Login(ctx context.Context, username, password string) (models.Owner, error) {
	log := logger.FromContextOr(ctx, a.logger)

	username = validators.NormalizeText(username)
	if username == "" || password == "" {
		return models.Owner{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		// pay for one verification anyway
		_, _ = a.hasher.Verify(password, a.dummy())
		log.Debug().Str("func", "*authService.Login").Msg("unknown username")
		return models.Owner{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.Owner{}, mapStoreError(err)
	}

	if err = a.verify(ctx, user, password); err != nil {
		return models.Owner{}, err
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		if err = a.userRepository.UpdatePasswordHash(ctx, user.UserID, a.hasher.Hash(password), a.now().UTC()); err != nil {
			log.Warn().Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("error upgrading password hash")
		} else {
			log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("password hash upgraded")
		}
	}

	return user.Owner()
}

// ResetPassword replaces the master credential of the account registered
// with email. It is the hash-replacement step of a reset; proving control of
// the address is left to the caller.
func (a *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContextOr(ctx, a.logger)

	req := models.RegisterRequest{Email: normalizeEmail(email), Password: newPassword}
	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldPassword); err != nil {
		return mapValidationError(err)
	}

	if err := a.master.Check(newPassword); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user search by email failed")
		return mapStoreError(err)
	}

	return a.replaceHash(ctx, "*authService.ResetPassword", user.UserID, newPassword)
}

// ChangePassword replaces the master credential of owner after verifying
// current.
func (a *authService) ChangePassword(ctx context.Context, owner models.Owner, current, next string) error {
	log := logger.FromContextOr(ctx, a.logger)

	if err := a.validator.Validate(ctx, owner); err != nil {
		return mapValidationError(err)
	}

	if err := a.master.Check(next); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByID(ctx, owner.UserID())
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", owner.UserID()).Msg("user search by id failed")
		return mapStoreError(err)
	}

	if err = a.verify(ctx, user, current); err != nil {
		return err
	}

	return a.replaceHash(ctx, "*authService.ChangePassword", user.UserID, next)
}

func (a *authService) EvaluatePassword(password string) policy.Verdict {
	return a.master.Evaluate(password)
}

// verify checks password against the stored record of user. A corrupt
// record is reported as crypto.ErrMalformedHashRecord, a mismatch as
// ErrInvalidCredentials.
func (a *authService) verify(ctx context.Context, user models.User, password string) error {
	log := logger.FromContextOr(ctx, a.logger)

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.verify").Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
		return fmt.Errorf("verify master password: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.verify").Int64("user_id", user.UserID).Msg("wrong password")
		return ErrInvalidCredentials
	}
	return nil
}

func (a *authService) replaceHash(ctx context.Context, funcName string, userID int64, password string) error {
	log := logger.FromContextOr(ctx, a.logger)

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, a.hasher.Hash(password), a.now().UTC()); err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error replacing password hash")
		return mapStoreError(err)
	}

	log.Info().Str("func", funcName).Int64("user_id", userID).Msg("master password replaced")
	return nil
}

func (a *authService) dummy() string {
	a.dummyOnce.Do(func() {
		a.dummyRecord = a.hasher.Hash(dummyPassword)
	})
	return a.dummyRecord
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
