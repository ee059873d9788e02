package nav

import (
	"log/slog"

	"github.com/mpawlak/zakupnik/internal/session"
)

// Guard redirects screens based on session presence. Each screen invokes
// CheckSession on mount with a flag saying which side of the login wall it
// belongs to.
type Guard struct {
	sessions session.Store
	log      *slog.Logger
}

// NewGuard creates a session guard over the given session store.
func NewGuard(sessions session.Store, log *slog.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// CheckSession inspects the session store and adjusts navigation:
//
//   - token present, redirectWhenAuthed (Login, Registration): reset the stack
//     so Dashboard is the sole entry
//   - token absent, !redirectWhenAuthed (Dashboard, Products): navigate to
//     Login, preserving the back-stack
//   - otherwise: no-op
//
// A session-store read error is logged and leaves navigation unchanged, so the
// user stays on the current screen.
func (g *Guard) CheckSession(n *Navigator, redirectWhenAuthed bool) {
	token, err := g.sessions.Token()
	if err != nil {
		g.log.Error("Session check failed", "error", err)
		return
	}

	if token != "" {
		if redirectWhenAuthed {
			n.Reset(RouteDashboard)
		}
		return
	}

	if !redirectWhenAuthed {
		n.Navigate(RouteLogin)
	}
}
