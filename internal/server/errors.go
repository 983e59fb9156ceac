package server

import "errors"

// errNoHTTPHandler is returned when there is nothing to serve: the handlers
// carry no HTTP router or no listen address is configured.
var errNoHTTPHandler = errors.New("http handler or listen address is not configured")
