// Package validators checks API request bodies, path ids and query
// parameters before they reach the services.
//
// Failures of individual fields are collected into [ValidationErrors] so that
// a response can list every rejected field at once. Query parameter failures
// additionally match [ErrInvalidQueryParams].
package validators

import "context"

// Validator validates one request value. fields restricts the check to the
// named fields; none means all of them.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
