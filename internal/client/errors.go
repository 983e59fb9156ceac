package client

import "errors"

var (
	// ErrNotLoggedIn is returned when the server rejects the saved session.
	ErrNotLoggedIn = errors.New("not logged in, run the login command first")

	ErrEmptyInput = errors.New("input is empty")
)
