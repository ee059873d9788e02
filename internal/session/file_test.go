package session

import (
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "session")
	store := NewFileStore(path)

	t.Run("Token is empty before any save", func(t *testing.T) {
		token, err := store.Token()
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		if token != "" {
			t.Errorf("Expected empty token, got %q", token)
		}
	})

	t.Run("Save then Token round-trips", func(t *testing.T) {
		if err := store.Save("session_1700000000000"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		token, err := store.Token()
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		if token != "session_1700000000000" {
			t.Errorf("Unexpected token: %q", token)
		}
	})

	t.Run("Token survives a new store over the same path", func(t *testing.T) {
		reopened := NewFileStore(path)
		token, err := reopened.Token()
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		if token == "" {
			t.Error("Expected token to survive reopen")
		}
	})

	t.Run("Clear removes the token", func(t *testing.T) {
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		token, err := store.Token()
		if err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		if token != "" {
			t.Errorf("Expected empty token after clear, got %q", token)
		}
	})

	t.Run("Clear on an empty store is a no-op", func(t *testing.T) {
		if err := store.Clear(); err != nil {
			t.Errorf("Clear on empty store failed: %v", err)
		}
	})
}
