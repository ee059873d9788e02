// Package auth implements registration, credential checks and session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpawlak/zakupnik/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrUsernameTaken      = errors.New("username already taken")
)

// UserStorage defines the interface for user persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, username, password string) (*models.User, error)
}

// Authenticator registers users and verifies credentials.
//
// Credentials are stored and compared in plain text; the existing data was
// written that way and hardening it is out of scope.
type Authenticator struct {
	storage UserStorage
}

// NewAuthenticator creates an Authenticator over the given user storage.
func NewAuthenticator(storage UserStorage) *Authenticator {
	return &Authenticator{storage: storage}
}

// Register creates a new user account.
//
// The duplicate-username check and the insert are two separate statements, not
// one atomic operation; only one registration flow runs at a time here.
func (a *Authenticator) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	existing, err := a.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{Username: username, Password: password}
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username and password, returning the user if valid.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.storage.GetUserByCredentials(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
