// Package session persists the login session token between runs.
//
// The store holds exactly one value: an opaque token whose presence means "a
// login occurred". It deliberately does not record which user logged in; the
// active identity lives in memory only and is re-derived by logging in again.
package session

// Store is the persistent single-token session store.
type Store interface {
	// Token returns the stored session token, or "" when logged out.
	Token() (string, error)

	// Save stores the token, replacing any previous one.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}
