package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/session"
	"github.com/mpawlak/zakupnik/internal/storage/sqlite"
)

func newAuthService(t *testing.T) (*AuthService, session.Store) {
	t.Helper()

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sessions := session.NewFileStore(filepath.Join(dir, "session"))
	tokens := auth.NewTokenManager("test-secret")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(auth.NewAuthenticator(store), tokens, sessions, logger), sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	t.Run("register then login with same credentials succeeds", func(t *testing.T) {
		if _, err := svc.Register(ctx, "anna", "pass1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		user, err := svc.Login(ctx, "anna", "pass1")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.Username != "anna" {
			t.Errorf("Unexpected user: %+v", user)
		}

		token, err := sessions.Token()
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		if token == "" {
			t.Error("Expected a session token after login")
		}
	})

	t.Run("duplicate username is rejected without a write", func(t *testing.T) {
		_, err := svc.Register(ctx, "anna", "otherpass")
		if !errors.Is(err, auth.ErrUsernameTaken) {
			t.Fatalf("Expected ErrUsernameTaken, got %v", err)
		}

		// The second registration must not have created a row.
		if _, err := svc.Login(ctx, "anna", "otherpass"); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for rejected registration, got %v", err)
		}
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		if _, err := svc.Register(ctx, "", "pass"); !errors.Is(err, auth.ErrEmptyCredentials) {
			t.Errorf("Expected ErrEmptyCredentials, got %v", err)
		}
		if _, err := svc.Register(ctx, "bob", ""); !errors.Is(err, auth.ErrEmptyCredentials) {
			t.Errorf("Expected ErrEmptyCredentials, got %v", err)
		}
	})
}

func TestLoginFailureWritesNoToken(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "anna", "pass1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login(ctx, "anna", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}

	token, err := sessions.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "" {
		t.Errorf("Expected no session token after failed login, got %q", token)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "anna", "pass1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Login(ctx, "anna", "pass1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	token, err := sessions.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "" {
		t.Errorf("Expected empty token after logout, got %q", token)
	}
}
