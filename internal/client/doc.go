// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-task-keeper command-line client.
//
// Commands are built with cobra and talk to the server through an
// [adapter.ServerAdapter]. The session cookie issued on login is persisted to
// a file under the XDG state directory, so consecutive invocations share one
// session until logout or token expiry.
package client
