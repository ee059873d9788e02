package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mpawlak/zakupnik/internal/models"
)

// CreateUser inserts a new user and populates user.ID from the row ID.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		user.Username, user.Password,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByUsername retrieves a user by login name.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.Password)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetUserByCredentials retrieves the user matching username and password exactly.
func (s *SQLiteStore) GetUserByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ? AND password = ?",
		username, password,
	).Scan(&user.ID, &user.Username, &user.Password)

	if err == sql.ErrNoRows {
		return nil, nil // No match
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	return user, nil
}
