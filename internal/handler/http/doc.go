// Package http implements the REST transport of go-task-keeper.
//
// It wires the chi router, decodes and validates requests, keeps the session
// token in an HttpOnly cookie and maps service errors to JSON responses.
// Cross-cutting concerns such as tracing, access logging, CORS, security
// headers, compression and authentication are middlewares of this package.
package http
