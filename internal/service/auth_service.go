package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/session"
)

// AuthService wires the authenticator, the token manager and the session store
// behind the login, registration and logout flows.
type AuthService struct {
	authenticator *auth.Authenticator
	tokens        *auth.TokenManager
	sessions      session.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator *auth.Authenticator, tokens *auth.TokenManager, sessions session.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		sessions:      sessions,
		logger:        logger,
	}
}

// Register creates a new user account. The caller surfaces auth.ErrEmptyCredentials
// and auth.ErrUsernameTaken to the user; anything else is a store failure.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.authenticator.Register(ctx, username, password)
	if err != nil {
		s.logger.Warn("Registration failed", "username", username, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates the user and, on success, persists a fresh session token.
// No state changes on a credential mismatch.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "error", err)
		return nil, err
	}

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("Failed to generate session token", "error", err)
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.sessions.Save(token); err != nil {
		s.logger.Error("Failed to save session", "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Logout removes the session token. The in-memory identity is cleared by the
// app, not here.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		s.logger.Error("Failed to clear session", "error", err)
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("User logged out")
	return nil
}
