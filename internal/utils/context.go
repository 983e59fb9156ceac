// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AuthenticatedUserCtxKey is the key under which the authentication
// middleware stores the caller's [models.AuthenticatedUser].
var AuthenticatedUserCtxKey = contextKey("authenticatedUser")

// WithAuthenticatedUser returns a copy of ctx carrying user.
func WithAuthenticatedUser(ctx context.Context, user models.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, AuthenticatedUserCtxKey, user)
}

// GetAuthenticatedUserFromContext retrieves the authenticated user from the
// context.
//
// Returns ok == false if the value is missing or has an unexpected type.
//
// Example usage:
//
//	user, ok := utils.GetAuthenticatedUserFromContext(ctx)
//	if !ok {
//	    // the route is not behind the authentication middleware
//	}
func GetAuthenticatedUserFromContext(ctx context.Context) (models.AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthenticatedUserCtxKey).(models.AuthenticatedUser)
	return user, ok
}

// GetUserIDFromContext is a shorthand for the id of the authenticated user.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := GetAuthenticatedUserFromContext(ctx)
	return user.ID, ok
}
