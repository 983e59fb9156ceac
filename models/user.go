package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user email. Equality is case-sensitive.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plaintext password of an inbound register/login
	// request. It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is stored by the identity store and never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the identity fields of u that are safe to put into a
// response body.
func (u User) Public() AuthenticatedUser {
	return AuthenticatedUser{
		ID:    u.UserID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// AuthenticatedUser is the identity the authentication middleware attaches to
// the request context after a session token has been verified and resolved.
type AuthenticatedUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
