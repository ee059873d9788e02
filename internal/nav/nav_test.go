package nav

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mpawlak/zakupnik/internal/session"
)

func TestNavigator(t *testing.T) {
	t.Run("initial route is Login", func(t *testing.T) {
		n := New()
		if n.Current() != RouteLogin {
			t.Errorf("Expected Login, got %s", n.Current())
		}
		if n.Depth() != 1 {
			t.Errorf("Expected depth 1, got %d", n.Depth())
		}
	})

	t.Run("Navigate pushes, Back pops", func(t *testing.T) {
		n := New()
		n.Navigate(RouteRegistration)
		if n.Current() != RouteRegistration || n.Depth() != 2 {
			t.Errorf("After Navigate: current=%s depth=%d", n.Current(), n.Depth())
		}

		n.Back()
		if n.Current() != RouteLogin || n.Depth() != 1 {
			t.Errorf("After Back: current=%s depth=%d", n.Current(), n.Depth())
		}
	})

	t.Run("Back at root is a no-op", func(t *testing.T) {
		n := New()
		n.Back()
		if n.Current() != RouteLogin || n.Depth() != 1 {
			t.Errorf("Back at root changed the stack: current=%s depth=%d", n.Current(), n.Depth())
		}
	})

	t.Run("Reset clears the back-stack", func(t *testing.T) {
		n := New()
		n.Navigate(RouteRegistration)
		n.Reset(RouteDashboard)
		if n.Current() != RouteDashboard || n.Depth() != 1 {
			t.Errorf("After Reset: current=%s depth=%d", n.Current(), n.Depth())
		}
	})
}

// failingSessions simulates a session store whose reads fail.
type failingSessions struct{}

func (failingSessions) Token() (string, error) { return "", errors.New("read failed") }
func (failingSessions) Save(string) error      { return nil }
func (failingSessions) Clear() error           { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionsWithToken(t *testing.T, token string) session.Store {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session"))
	if token != "" {
		if err := store.Save(token); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	return store
}

func TestGuard(t *testing.T) {
	t.Run("authenticated on Login resets to Dashboard", func(t *testing.T) {
		guard := NewGuard(sessionsWithToken(t, "tok"), testLogger())
		n := New()
		n.Navigate(RouteRegistration) // back-stack must be cleared too

		guard.CheckSession(n, true)
		if n.Current() != RouteDashboard || n.Depth() != 1 {
			t.Errorf("Expected sole Dashboard entry, got current=%s depth=%d", n.Current(), n.Depth())
		}
	})

	t.Run("authenticated on a protected screen is a no-op", func(t *testing.T) {
		guard := NewGuard(sessionsWithToken(t, "tok"), testLogger())
		n := New()
		n.Reset(RouteDashboard)

		guard.CheckSession(n, false)
		if n.Current() != RouteDashboard || n.Depth() != 1 {
			t.Errorf("Expected unchanged navigation, got current=%s depth=%d", n.Current(), n.Depth())
		}
	})

	t.Run("unauthenticated on a protected screen navigates to Login", func(t *testing.T) {
		guard := NewGuard(sessionsWithToken(t, ""), testLogger())
		n := New()
		n.Reset(RouteDashboard)

		guard.CheckSession(n, false)
		if n.Current() != RouteLogin {
			t.Errorf("Expected Login, got %s", n.Current())
		}
		if n.Depth() != 2 {
			t.Errorf("Expected preserved back-stack (depth 2), got %d", n.Depth())
		}
	})

	t.Run("unauthenticated on Login is a no-op", func(t *testing.T) {
		guard := NewGuard(sessionsWithToken(t, ""), testLogger())
		n := New()

		guard.CheckSession(n, true)
		if n.Current() != RouteLogin || n.Depth() != 1 {
			t.Errorf("Expected unchanged navigation, got current=%s depth=%d", n.Current(), n.Depth())
		}
	})

	t.Run("store error leaves navigation unchanged", func(t *testing.T) {
		guard := NewGuard(failingSessions{}, testLogger())

		n := New()
		guard.CheckSession(n, true)
		if n.Current() != RouteLogin || n.Depth() != 1 {
			t.Errorf("Fail-open violated on Login: current=%s depth=%d", n.Current(), n.Depth())
		}

		n.Reset(RouteDashboard)
		guard.CheckSession(n, false)
		if n.Current() != RouteDashboard || n.Depth() != 1 {
			t.Errorf("Fail-open violated on Dashboard: current=%s depth=%d", n.Current(), n.Depth())
		}
	})
}
