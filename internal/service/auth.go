package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Auth implements signup and login.
type Auth struct {
	userStore    model.UserStore
	hasher       PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignUp creates a user. Only the password hash is persisted.
func (a *Auth) SignUp(ctx context.Context, username, name, plainPassword string) (model.User, error) {
	a.logger.Debug("Auth service: starting signup",
		"username", username)

	if username == "" {
		return model.User{}, model.NewValidationError("username is required")
	}
	if plainPassword == "" {
		return model.User{}, model.NewValidationError("password is required")
	}

	hash, err := a.hasher.Hash(plainPassword)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			a.logger.Info("Auth service: username already taken",
				"username", username)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"username", username,
		"user_id", user.ID)

	return user, nil
}

// Login verifies the credentials and mints a bearer token. Unknown
// username and wrong password fail identically with
// model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, username, plainPassword string) (string, model.User, error) {
	a.logger.Debug("Auth service: starting login",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login failed",
				"username", username)
			return "", model.User{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(plainPassword, user.PasswordHash) {
		a.logger.Info("Auth service: login failed",
			"username", username)
		return "", model.User{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.Generate(user.Username, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"username", username,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"username", username,
		"user_id", user.ID)

	return tokenString, user, nil
}
