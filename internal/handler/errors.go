package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server has no address
// to listen on, so the router would never be served.
var errNoHTTPAddress = errors.New("server http address is not configured")
