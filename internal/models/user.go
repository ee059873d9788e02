package models

// User represents a registered account.
//
// Passwords are stored in plain text and compared by exact match. This mirrors the
// behavior the app has always had; hardening the credential storage is explicitly
// out of scope.
type User struct {
	// ID is the auto-assigned row ID. It scopes every product and
	// shopping-list query.
	ID int64

	// Username is the login name. Uniqueness is checked before insert, not
	// enforced by a storage constraint.
	Username string

	// Password is the plain-text password.
	Password string
}
