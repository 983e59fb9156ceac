// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the command-line client uses
// to talk to the go-task-keeper API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// commands from HTTP. The only implementation is the resty-based
// [NewHTTPServerAdapter]. Authentication is carried by the server's session
// cookie, which the adapter keeps in a cookie jar and can export and import
// so that a session survives between client invocations.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and [errors.As] with [*APIError] for the server's message and field errors.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-task-keeper server.
type ServerAdapter interface {
	// SessionCookie returns the session cookie the server set on the last
	// successful register or login, or nil.
	SessionCookie() *http.Cookie

	// SetSessionCookie installs a session cookie saved by an earlier run.
	SetSessionCookie(cookie *http.Cookie)

	// Register creates an account and starts a session for it.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthenticatedUser, error)

	// Login starts a session for an existing account.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthenticatedUser, error)

	// Logout ends the current session. The server only clears the cookie;
	// the token stays valid until it expires.
	Logout(ctx context.Context) error

	// Me returns the user of the current session.
	Me(ctx context.Context) (models.AuthenticatedUser, error)

	// ListTasks returns one page of the caller's tasks. Zero fields of filter
	// are left to the server defaults; filter.UserID is ignored.
	ListTasks(ctx context.Context, filter models.TaskFilter) (models.TaskListResponse, error)

	CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	// Health reports whether the server answers its health check.
	Health(ctx context.Context) error

	// ServerVersion returns the version the server reports.
	ServerVersion(ctx context.Context) (string, error)
}
