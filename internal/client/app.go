// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	clientRole        = "go-task-keeper-client"
	clientLogFileName = "go-task-keeper/client.log"
)

// adapterFactory builds the transport to the server for one invocation.
type adapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the command-line client. Each Run builds a fresh command tree, so an
// App can execute several commands in sequence.
type App struct {
	buildInfo  models.AppBuildInfo
	newAdapter adapterFactory

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// defaults used when neither flags nor the environment name a location
	sessionPath string
	logPath     string
}

var _ Client = (*App)(nil)

// NewApp constructs the client with session and log files under the XDG
// state directory.
func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	sessionPath, err := DefaultSessionPath()
	if err != nil {
		return nil, err
	}

	logPath, err := xdg.StateFile(clientLogFileName)
	if err != nil {
		return nil, fmt.Errorf("error resolving log file: %w", err)
	}

	return &App{
		buildInfo:   buildInfo,
		newAdapter:  adapter.NewHTTPServerAdapter,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		sessionPath: sessionPath,
		logPath:     logPath,
	}, nil
}

// Run executes the command named by args.
//
// When the server rejects the saved session the session file is removed and
// the error wraps [ErrNotLoggedIn].
func (a *App) Run(ctx context.Context, args []string) error {
	root, env := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) && env.store != nil {
		if clearErr := env.store.Clear(); clearErr != nil {
			env.log.Warn().Err(clearErr).Msg("failed to remove rejected session")
		}
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	return err
}
