// Package screen implements the four screens of the app: Login, Registration,
// Dashboard and Products.
//
// Each screen's Show method runs one interaction round: the session guard
// first (as on every screen mount in the original app), then rendering and a
// single command. The app loop re-invokes Show until navigation moves away.
// All user-facing strings are Polish, matching the app this replaces.
package screen

import (
	"errors"

	"github.com/mpawlak/zakupnik/internal/models"
)

// ErrQuit is returned by a screen when the user exits the app (or stdin
// closes). The app loop treats it as a clean shutdown.
var ErrQuit = errors.New("quit")

// userID extracts the scoping ID from the active user.
//
// After a process restart the session token alone satisfies the guard while no
// user is in memory, so an authenticated screen can run with user == nil. The
// zero ID then matches no rows and screens render empty data until the user
// logs in again; the inherited session/identity gap stays visible instead of
// being silently patched.
func userID(user *models.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
